package asset

// Registry records every URL requested during a page's lifetime. It only
// grows. It is not safe for concurrent use; Session guards it.
type Registry struct {
	urls []string
	seen map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// RequestOnce registers url and reports whether it was new.
func (r *Registry) RequestOnce(url string) bool {
	if _, ok := r.seen[url]; ok {
		return false
	}
	r.seen[url] = struct{}{}
	r.urls = append(r.urls, url)
	return true
}

func (r *Registry) Has(url string) bool {
	_, ok := r.seen[url]
	return ok
}

func (r *Registry) Len() int {
	return len(r.urls)
}

// URLs returns the registered URLs in the order they were first requested.
func (r *Registry) URLs() []string {
	return append([]string(nil), r.urls...)
}
