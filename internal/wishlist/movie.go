package wishlist

import "encoding/json"

// Movie is a saved catalog entry: an id, a title, and whatever descriptive
// fields enrichment attached.
//
// JSON form is flat: extra fields sit beside id and title at the top level,
// matching the array-of-objects layout the web front-end persisted.
type Movie struct {
	ID    int64
	Title string
	Extra map[string]any
}

// Field returns a descriptive field by name, or nil when absent.
func (m Movie) Field(name string) any {
	if m.Extra == nil {
		return nil
	}
	return m.Extra[name]
}

// MarshalJSON flattens the entry into a single JSON object.
func (m Movie) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(m.Extra)+2)
	for k, v := range m.Extra {
		flat[k] = v
	}
	flat["id"] = m.ID
	flat["title"] = m.Title
	return json.Marshal(flat)
}

// UnmarshalJSON splits a flat JSON object into id, title, and extras.
func (m *Movie) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	*m = fromFields(flat)
	return nil
}

// fromFields builds a Movie from a flat field map.
func fromFields(fields map[string]any) Movie {
	m := Movie{Extra: make(map[string]any, len(fields))}
	for k, v := range fields {
		switch k {
		case "id":
			if id, ok := v.(float64); ok {
				m.ID = int64(id)
			}
		case "title":
			if title, ok := v.(string); ok {
				m.Title = title
			}
		default:
			m.Extra[k] = v
		}
	}
	return m
}

// merge overlays lookup fields over the locally supplied entry.
// Lookup fields win on collision; the original id is kept when the lookup
// omits or mangles it.
func merge(local Movie, lookup map[string]any) Movie {
	flat := make(map[string]any, len(local.Extra)+len(lookup)+2)
	for k, v := range local.Extra {
		flat[k] = v
	}
	flat["id"] = float64(local.ID)
	flat["title"] = local.Title
	for k, v := range lookup {
		flat[k] = v
	}

	merged := fromFields(flat)
	if merged.ID == 0 {
		merged.ID = local.ID
	}
	if merged.Title == "" {
		merged.Title = local.Title
	}
	return merged
}
