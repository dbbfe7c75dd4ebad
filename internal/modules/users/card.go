package users

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/nfrund/octofit/internal/decor"
	"github.com/nfrund/octofit/internal/domain"
	"github.com/nfrund/octofit/internal/module"
)

// Sync states of a user's neural link.
const (
	Connected = "CONNECTED"
	Offline   = "OFFLINE"
)

const (
	maxNeuralLevel   = 10
	maxAugmentations = 4
	brainNodes       = 20
	// lastSyncWindow bounds how long ago a user last synced.
	lastSyncWindow = 10_000_000 * time.Millisecond
)

var (
	accessLevels      = []string{"CIVILIAN", "ENHANCED", "PRIME", "ADMIN"}
	augmentationTypes = []string{
		"Neural Enhancer",
		"Synaptic Accelerator",
		"Cognitive Amplifier",
		"Muscle Optimizer",
		"Cardio Enhancer",
	}
)

// Card is a user with its synthetic display attributes.
type Card struct {
	domain.User
	Level         int
	Augmentations []Augmentation
	Sync          string
	Access        string
	LastSync      time.Time
	Brain         []Node
}

// Augmentation is one installed enhancement.
type Augmentation struct {
	Name       string
	Level      int
	Efficiency int
}

// Node is a dot of the brain scan, position in percent.
type Node struct {
	X, Y    float64
	Delay   float64
	Opacity float64
}

// Connected reports whether the user's link is up.
func (c Card) Connected() bool { return c.Sync == Connected }

// ShortID is the truncated identifier shown in the table.
func (c Card) ShortID() string {
	id := []rune(c.Key())
	return "#" + string(id[:min(5, len(id))])
}

// Avatar is the initial of the username.
func (c Card) Avatar() string {
	r, _ := utf8.DecodeRuneInString(c.Username)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

// Density is the neural density percentage shown in the profile.
func (c Card) Density() int { return 70 + c.Level*3 }

// SyncQuality is shown in the profile, N/A while offline.
func (c Card) SyncQuality() string {
	if c.Connected() {
		return "98%"
	}
	return "N/A"
}

// AugmentationIcon picks a glyph by the augmentation's kind.
func AugmentationIcon(name string) string {
	switch {
	case strings.Contains(name, "Neural"):
		return "🧠"
	case strings.Contains(name, "Synaptic"):
		return "⚡"
	case strings.Contains(name, "Cognitive"):
		return "💭"
	case strings.Contains(name, "Muscle"):
		return "💪"
	case strings.Contains(name, "Cardio"):
		return "❤️"
	default:
		return "🔧"
	}
}

func wrap(users []domain.User) []Card {
	cards := make([]Card, len(users))
	for i, u := range users {
		cards[i] = Card{User: u}
	}
	return cards
}

func decorate(src *decor.Source, now time.Time, cards []Card) []Card {
	for i := range cards {
		c := &cards[i]
		c.Level = src.Between(1, maxNeuralLevel)
		c.Augmentations = make([]Augmentation, src.Between(0, maxAugmentations))
		for j := range c.Augmentations {
			c.Augmentations[j] = Augmentation{
				Name:       src.Pick(augmentationTypes...),
				Level:      src.Between(1, 5),
				Efficiency: src.Between(70, 99),
			}
		}
		c.Sync = Offline
		if src.Chance(0.8) {
			c.Sync = Connected
		}
		c.Access = src.Pick(accessLevels...)
		c.LastSync = now.Add(-time.Duration(src.Float() * float64(lastSyncWindow))).Truncate(time.Millisecond)
		c.Brain = make([]Node, brainNodes)
		for j := range c.Brain {
			c.Brain[j] = Node{
				X:       src.Float() * 100,
				Y:       src.Float() * 100,
				Delay:   src.Float() * 3,
				Opacity: src.Float()*0.7 + 0.3,
			}
		}
	}
	return cards
}

// CountConnected is the number of users whose link is up.
func CountConnected(cards []Card) int {
	n := 0
	for _, c := range cards {
		if c.Connected() {
			n++
		}
	}
	return n
}

// Stats is the summary in the panel header.
func Stats(cards []Card) []module.Stat {
	return []module.Stat{
		{Title: "Identified", Value: strconv.Itoa(len(cards))},
		{Title: "Connected", Value: strconv.Itoa(CountConnected(cards))},
	}
}
