package registry

import (
	"github.com/nfrund/octofit/internal/apiclient"
	"github.com/nfrund/octofit/internal/pubsub"
	"github.com/nfrund/octofit/internal/rendering"
)

// Core service keys. Module-owned services declare their keys in the
// owning package.
const (
	PublisherKey  Key[pubsub.Publisher]   = "core.publisher"
	SubscriberKey Key[pubsub.Subscriber]  = "core.subscriber"
	RendererKey   Key[rendering.Renderer] = "core.renderer"
	APIClientKey  Key[*apiclient.Client]  = "core.apiclient"
)
