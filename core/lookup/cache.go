// Package lookup holds the two small reference lists (classes, subjects)
// used to map free-text names to stable ids when editing assignments.
package lookup

import "context"

// Fixed per-resource failure messages, surfaced verbatim by the UI.
const (
	classesFailedMsg  = "Failed to load classes"
	subjectsFailedMsg = "Failed to load subjects"
)

type (
	Item struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	// Client fetches the two lookup lists from the REST endpoints.
	Client interface {
		Classes(ctx context.Context) ([]Item, error)
		Subjects(ctx context.Context) ([]Item, error)
	}

	// Resource is one independently loadable option list. Items, Loading and
	// Err are three explicit states, never conflated.
	Resource struct {
		Items   []Item
		Loading bool
		Err     string
		// Ready is set once a fetch has settled successfully, even with an
		// empty list; name resolution falls back to free text until then.
		Ready bool
	}

	// Cache holds both resources and the admin-activation edge that triggers
	// their fetch. It is driven from a single event loop; methods are not
	// safe for concurrent use.
	Cache struct {
		classes  Resource
		subjects Resource
		active   bool
	}

	// Snapshot is the read-only view handed to the edit synchronizer.
	Snapshot struct {
		Classes       []Item
		Subjects      []Item
		ClassesReady  bool
		SubjectsReady bool
	}
)

func NewCache() *Cache {
	return &Cache{}
}

// Activate tracks the admin flag and reports whether its false-to-true
// transition just happened, i.e. whether both fetches should start now.
// On that transition both resources enter their loading state: Loading set,
// prior Err cleared, Items kept. A false flag re-arms the edge so the next
// admin session fetches again.
func (c *Cache) Activate(admin bool) bool {
	if !admin {
		c.active = false
		return false
	}
	if c.active {
		return false
	}
	c.active = true
	c.classes.begin()
	c.subjects.begin()
	return true
}

// SetClasses settles the classes fetch. A failure keeps the prior Items and
// sets the fixed message; success replaces Items (nil becomes empty).
func (c *Cache) SetClasses(items []Item, err error) {
	c.classes.settle(items, err, classesFailedMsg)
}

// SetSubjects settles the subjects fetch.
func (c *Cache) SetSubjects(items []Item, err error) {
	c.subjects.settle(items, err, subjectsFailedMsg)
}

func (c *Cache) Classes() Resource  { return c.classes }
func (c *Cache) Subjects() Resource { return c.subjects }

func (c *Cache) Snapshot() Snapshot {
	return Snapshot{
		Classes:       c.classes.Items,
		Subjects:      c.subjects.Items,
		ClassesReady:  c.classes.Ready,
		SubjectsReady: c.subjects.Ready,
	}
}

// Reset drops all state; used on sign-out.
func (c *Cache) Reset() {
	*c = Cache{}
}

func (r *Resource) begin() {
	r.Loading = true
	r.Err = ""
}

func (r *Resource) settle(items []Item, err error, failedMsg string) {
	r.Loading = false
	if err != nil {
		r.Err = failedMsg
		return
	}
	if items == nil {
		items = []Item{}
	}
	r.Items = items
	r.Err = ""
	r.Ready = true
}

// NameOf returns the name of the item with the given id, or "".
func NameOf(items []Item, id string) string {
	for _, it := range items {
		if it.ID == id {
			return it.Name
		}
	}
	return ""
}
