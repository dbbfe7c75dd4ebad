package domain

// Team is a named group of users. Members may be absent.
type Team struct {
	Identity
	Name    string    `json:"name"`
	Members []UserRef `json:"members"`
}

// MemberCount is the number of listed members, zero when the list is absent.
func (t Team) MemberCount() int { return len(t.Members) }
