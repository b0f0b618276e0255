package access

import (
	"strings"

	"github.com/tidwall/gjson"
)

var subscriptionMarkers = []string{"is_active", "approved", "status", "start_date", "end_date"}

// Candidates flattens the shapes the subscription endpoint has been seen to
// return: a bare array, {data: [...]}, {plans: [...], current_subscription:
// {...}} or a single object.
func Candidates(raw []byte) []gjson.Result {
	if !gjson.ValidBytes(raw) {
		return nil
	}
	return candidatesOf(gjson.ParseBytes(raw))
}

func candidatesOf(doc gjson.Result) []gjson.Result {
	switch {
	case doc.IsArray():
		return doc.Array()
	case doc.IsObject():
		if data := doc.Get("data"); data.IsArray() {
			return data.Array()
		} else if data.IsObject() {
			return []gjson.Result{data}
		}

		var candidates []gjson.Result
		if current := doc.Get("current_subscription"); current.IsObject() {
			candidates = append(candidates, current)
		}
		if plans := doc.Get("plans"); plans.IsArray() {
			candidates = append(candidates, plans.Array()...)
		}
		if len(candidates) > 0 {
			return candidates
		}
		return []gjson.Result{doc}
	}
	return nil
}

// LooksLikeSubscription is true for objects carrying any subscription field
// that are not plan definitions.
func LooksLikeSubscription(value gjson.Result) bool {
	if !value.IsObject() {
		return false
	}
	if value.Get("price_monthly").Exists() && value.Get("max_doctors").Exists() {
		return false
	}
	for _, marker := range subscriptionMarkers {
		if value.Get(marker).Exists() {
			return true
		}
	}
	return false
}

// FindSubscription returns the first subscription-like candidate.
func FindSubscription(raw []byte) (gjson.Result, bool) {
	for _, candidate := range Candidates(raw) {
		if LooksLikeSubscription(candidate) {
			return candidate, true
		}
	}
	return gjson.Result{}, false
}

// NormalizeActive decides whether a subscription grants access. The first
// field present wins: is_active, then approved, then status.
func NormalizeActive(subscription gjson.Result) bool {
	if isActive := subscription.Get("is_active"); isBool(isActive) {
		return isActive.Bool()
	}
	if approved := subscription.Get("approved"); isBool(approved) {
		return approved.Bool()
	}
	if status := subscription.Get("status"); status.Type == gjson.String {
		switch strings.ToLower(strings.TrimSpace(status.String())) {
		case "active", "trial":
			return true
		}
	}
	return false
}

func isBool(value gjson.Result) bool {
	return value.Type == gjson.True || value.Type == gjson.False
}
