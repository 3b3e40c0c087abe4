package models

import "encoding/json"

// StringList decodes from either a JSON array of strings or a single scalar
// string. A scalar is normalized to a one-element list, matching how the
// creation API accepts `tech` and `features`.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*s = many
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*s = StringList{one}
	return nil
}
