package v1alpha1

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-narrative/internal/engine"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	"github.com/KirkDiggler/rpg-narrative/internal/orchestrators/session"
)

func stringField(req *structpb.Struct, key string) string {
	return req.GetFields()[key].GetStringValue()
}

func requireSessionID(req *structpb.Struct) (string, error) {
	id := stringField(req, KeySessionID)
	if id == "" {
		return "", errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	return id, nil
}

func toStruct(m map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.ToGRPCError(errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response"))
	}
	return out, nil
}

// stringList converts to the []any form structpb accepts
func stringList(items []string) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func statusToMap(st *session.Status) map[string]any {
	if st == nil {
		return map[string]any{}
	}
	return map[string]any{
		KeySessionID:           st.SessionID,
		KeyPlayerID:            st.PlayerID,
		"state":                string(st.State),
		KeyHeroName:            st.HeroName,
		"line_id":              st.LineID,
		"location_id":          st.LocationID,
		"location_name":        st.LocationName,
		"location_description": st.LocationDescription,
		"directions":           stringList(st.Directions),
		"protagonist_hp":       st.ProtagonistHP,
		"protagonist_xp":       st.ProtagonistXP,
		"antagonist_hp":        st.AntagonistHP,
		"inventory":            stringList(st.Inventory),
	}
}

func outcomeToMap(o *session.Outcome) map[string]any {
	if o == nil {
		return map[string]any{}
	}

	m := map[string]any{"kind": string(o.Kind)}
	if o.Message != "" {
		m["message"] = o.Message
	}
	if o.Dialogue != nil {
		m["dialogue"] = dialogueToMap(o.Dialogue)
	}
	if o.Location != nil {
		m["location"] = map[string]any{
			"location_id": o.Location.LocationID,
			"name":        o.Location.Name,
			"description": o.Location.Description,
			"directions":  stringList(o.Location.Directions),
		}
	}
	return m
}

func dialogueToMap(v *engine.DialogueView) map[string]any {
	m := map[string]any{
		"line_id":      v.LineID,
		"location_id":  v.LocationID,
		"text":         v.Text,
		"fork":         v.Fork,
		"next_line_id": v.NextLineID,
	}
	if v.Fork {
		m["option_a"] = v.OptionA
		m["option_b"] = v.OptionB
	}
	return m
}
