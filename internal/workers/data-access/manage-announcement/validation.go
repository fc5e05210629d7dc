package manageannouncement

import "placement-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"action"},
		Properties: map[string]validation.Property{
			"action":         {Type: "string", Enum: []string{string(ActionAdd), string(ActionRemove)}},
			"title":          {Type: "string", MaxLength: validation.Int(280)},
			"urgent":         {Type: "boolean"},
			"announcementId": {Type: "string"},
		},
	}
}
