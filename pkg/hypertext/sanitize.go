package hypertext

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicyOnce sync.Once
	ugcPolicy     *bluemonday.Policy
)

// Sanitize runs untrusted markup through policy and marks the cleaned
// output as trusted. This is the supported route for interpolating markup
// that did not originate from template text.
func Sanitize(policy *bluemonday.Policy, fragment string) Trusted {
	if policy == nil {
		return SanitizeUGC(fragment)
	}
	return Trusted(policy.Sanitize(fragment))
}

// SanitizeUGC sanitizes with a shared policy suitable for user generated
// content (formatting and links, no scripts or event handlers).
func SanitizeUGC(fragment string) Trusted {
	ugcPolicyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return Trusted(ugcPolicy.Sanitize(fragment))
}
