package blogs

import (
	"strings"

	"bloglist/internal/domain/models"
)

type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// AuthorizeMutation decides whether actor may update or delete post.
// Only the recorded owner is allowed; an empty identity never matches.
func AuthorizeMutation(actor models.Identity, post models.Post) Decision {
	actorID := canonicalID(actor.UserID)
	if actorID == "" {
		return Deny
	}
	if canonicalID(post.UserID) != actorID {
		return Deny
	}
	return Allow
}

// canonicalID brings ids from tokens, storage rows and path params to one form.
func canonicalID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
