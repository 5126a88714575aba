package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"promptserver/internal/prompt/builder"
)

// buildNode is the wire form of one prompt component. Type selects the
// variant; the other fields are variant-specific.
type buildNode struct {
	Type     string      `json:"type"`
	Text     string      `json:"text,omitempty"`
	Key      string      `json:"key,omitempty"`
	Operator string      `json:"operator,omitempty"`
	Value    string      `json:"value,omitempty"`
	Then     *buildNode  `json:"then,omitempty"`
	Else     *buildNode  `json:"else,omitempty"`
	Children []buildNode `json:"children,omitempty"`
}

type promptBuildRequest struct {
	Components []buildNode       `json:"components"`
	Tokens     map[string]string `json:"tokens"`
	MaxLength  int               `json:"maxLength"`
}

// PromptBuild assembles a prompt from a typed component tree. Malformed
// trees (unknown variant, conditional without a then branch) are payload
// errors; missing token values surface inside the result.
func (a *App) PromptBuild(w http.ResponseWriter, r *http.Request) {
	var req promptBuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	b := builder.New().WithTokens(req.Tokens)
	if req.MaxLength > 0 {
		b.MaxLength(req.MaxLength)
	}
	for i, node := range req.Components {
		component, err := toComponent(node)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("component %d: %v", i, err))
			return
		}
		b.Add(component)
	}

	a.json(w, http.StatusOK, b.Build())
}

func toComponent(node buildNode) (builder.Component, error) {
	switch node.Type {
	case "text":
		return builder.Text(node.Text), nil
	case "token":
		if node.Key == "" {
			return builder.Component{}, fmt.Errorf("token node requires a key")
		}
		return builder.Token(node.Key), nil
	case "conditional":
		if node.Key == "" {
			return builder.Component{}, fmt.Errorf("conditional node requires a key")
		}
		op, err := toOperator(node.Operator)
		if err != nil {
			return builder.Component{}, err
		}
		if node.Then == nil {
			return builder.Component{}, fmt.Errorf("conditional node requires a then branch")
		}
		then, err := toComponent(*node.Then)
		if err != nil {
			return builder.Component{}, err
		}
		if node.Else == nil {
			return builder.Conditional(node.Key, op, node.Value, then), nil
		}
		otherwise, err := toComponent(*node.Else)
		if err != nil {
			return builder.Component{}, err
		}
		return builder.ConditionalElse(node.Key, op, node.Value, then, otherwise), nil
	case "composite":
		children := make([]builder.Component, 0, len(node.Children))
		for _, child := range node.Children {
			c, err := toComponent(child)
			if err != nil {
				return builder.Component{}, err
			}
			children = append(children, c)
		}
		return builder.Composite(children...), nil
	default:
		return builder.Component{}, fmt.Errorf("unknown component type %q", node.Type)
	}
}

func toOperator(op string) (builder.Operator, error) {
	switch builder.Operator(op) {
	case builder.OpExists, builder.OpEquals, builder.OpNotEquals, builder.OpContains:
		return builder.Operator(op), nil
	case "":
		return builder.OpExists, nil
	default:
		return "", fmt.Errorf("unknown operator %q", op)
	}
}
