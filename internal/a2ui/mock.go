package a2ui

import "strings"

// MockResponder is the deterministic non-LLM generator. It serves every
// degradation path: no provider selected, provider unavailable, or a vendor
// call that failed. Respond is pure and total: the same message always
// yields the same document and no input can make it fail.
type MockResponder struct{}

// Respond routes on keywords in the message and returns a canned document
// demonstrating the matching component kind. Unrecognized messages get the
// default greeting card.
func (MockResponder) Respond(message string) Document {
	m := strings.ToLower(message)
	switch {
	case containsAny(m, "table", "compare", "comparison", "versus", " vs "):
		return tableDocument()
	case containsAny(m, "chart", "graph", "plot", "stats", "statistics"):
		return chartDocument()
	case containsAny(m, "list", "todo", "task", "steps", "checklist"):
		return listDocument()
	case containsAny(m, "weather", "forecast"):
		return weatherDocument()
	case containsAny(m, "image", "picture", "photo"):
		return imageDocument()
	default:
		return greetingDocument()
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func greetingDocument() Document {
	return NewDocument("Hello! I'm the A2UI backend. Ask me for a table, chart, or list to see rich components.",
		Component{
			ID:    "welcome-card",
			Type:  TypeCard,
			Props: map[string]any{"title": "A2UI Demo"},
			Children: []Component{
				{ID: "welcome-text", Type: TypeText, Props: map[string]any{
					"content": "No LLM provider is handling this request, so you are seeing the built-in demo responder.",
					"variant": "body",
				}},
				{ID: "welcome-actions", Type: TypeContainer, Props: map[string]any{"layout": "horizontal", "gap": "sm"}, Children: []Component{
					{ID: "chip-mock", Type: TypeChip, Props: map[string]any{"label": "mock", "variant": "primary"}},
					{ID: "chip-deterministic", Type: TypeChip, Props: map[string]any{"label": "deterministic"}},
				}},
			},
		})
}

func tableDocument() Document {
	return NewDocument("Here's a sample comparison table.",
		Component{
			ID:   "demo-table",
			Type: TypeDataTable,
			Props: map[string]any{
				"columns": []map[string]any{
					{"key": "name", "label": "Name"},
					{"key": "category", "label": "Category"},
					{"key": "score", "label": "Score", "align": "right"},
				},
				"data": []map[string]any{
					{"name": "Alpha", "category": "baseline", "score": 72},
					{"name": "Beta", "category": "candidate", "score": 85},
					{"name": "Gamma", "category": "candidate", "score": 91},
				},
			},
		})
}

func chartDocument() Document {
	return NewDocument("Here's a sample bar chart.",
		Component{
			ID:   "demo-chart",
			Type: TypeChart,
			Props: map[string]any{
				"chartType": "bar",
				"title":     "Requests per day",
				"data": map[string]any{
					"labels": []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
					"datasets": []map[string]any{
						{"label": "requests", "data": []int{120, 145, 98, 210, 173}},
					},
				},
			},
		})
}

func listDocument() Document {
	return NewDocument("Here's a sample checklist.",
		Component{
			ID:   "demo-list",
			Type: TypeList,
			Props: map[string]any{
				"variant": "checklist",
				"items": []map[string]any{
					{"id": "item-plan", "text": "Plan the layout", "status": "completed"},
					{"id": "item-build", "text": "Build the components", "status": "in-progress"},
					{"id": "item-ship", "text": "Ship it", "status": "pending"},
				},
			},
		})
}

func weatherDocument() Document {
	return NewDocument("I can't fetch live weather without a provider, but here's the shape of a weather card.",
		Component{
			ID:    "weather-card",
			Type:  TypeCard,
			Props: map[string]any{"title": "Weather", "subtitle": "Sample data"},
			Children: []Component{
				{ID: "weather-temp", Type: TypeText, Props: map[string]any{"content": "21°C, partly cloudy", "variant": "h2"}},
				{ID: "weather-note", Type: TypeText, Props: map[string]any{"content": "Configure an LLM provider and search for live answers.", "variant": "caption"}},
			},
		})
}

func imageDocument() Document {
	return NewDocument("Here's a sample image component.",
		Component{
			ID:   "demo-image",
			Type: TypeImage,
			Props: map[string]any{
				"src":     "https://picsum.photos/400/200",
				"alt":     "Placeholder image",
				"caption": "Placeholder from picsum.photos",
			},
		})
}
