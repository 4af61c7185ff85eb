package proxy

// AllowList is the fixed set of collection ids the proxy serves. A list is
// never mutated; a configuration reload builds a new one.
type AllowList struct {
	ids map[string]struct{}
}

// NewAllowList skips empty ids.
func NewAllowList(ids ...string) AllowList {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return AllowList{ids: set}
}

func (a AllowList) Allows(id string) bool {
	_, ok := a.ids[id]
	return ok
}

func (a AllowList) Len() int {
	return len(a.ids)
}
