package store

// The acknowledgment shapes mirror what the mongo shell and the node driver
// return, since clients of the API read those field names.
type (
	InsertAck struct {
		Acknowledged bool        `json:"acknowledged"`
		InsertedID   interface{} `json:"insertedId"`
	}

	UpdateAck struct {
		Acknowledged  bool        `json:"acknowledged"`
		MatchedCount  int64       `json:"matchedCount"`
		ModifiedCount int64       `json:"modifiedCount"`
		UpsertedCount int64       `json:"upsertedCount"`
		UpsertedID    interface{} `json:"upsertedId"`
	}

	DeleteAck struct {
		Acknowledged bool  `json:"acknowledged"`
		DeletedCount int64 `json:"deletedCount"`
	}
)
