package aobject

type (
	// GameObject is one record of the save file's flat object list.
	// Location and Properties may be absent.
	GameObject struct {
		ID         int64      `json:"id"`
		Class      string     `json:"class"`
		Names      []string   `json:"names,omitempty"`
		Location   *Location  `json:"location,omitempty"`
		Properties []Property `json:"properties,omitempty"`
	}
	Location struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
		Z float64 `json:"z"`
	}
	// Property is one entry of a property bag. Value holds bool, float64,
	// string, []any, *orderedmap.OrderedMap or nil. Index selects the stat
	// axis of parallel-array properties and is omitted by the converter
	// when it is 0.
	Property struct {
		Name  string `json:"name"`
		Type  string `json:"type,omitempty"`
		Index *int   `json:"index,omitempty"`
		Value any    `json:"value"`
	}
)
