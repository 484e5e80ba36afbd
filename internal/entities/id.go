package entities

import (
	"time"

	"todolist-be/internal/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID accepts either a native ObjectID or its 24 character hex form.
func ParseObjectID(id interface{}) (primitive.ObjectID, error) {
	switch v := id.(type) {
	case primitive.ObjectID:
		if v.IsZero() {
			return primitive.NilObjectID, apperrors.ErrInvalidID
		}
		return v, nil
	case string:
		oid, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return primitive.NilObjectID, apperrors.ErrInvalidID
		}
		return oid, nil
	default:
		return primitive.NilObjectID, apperrors.ErrInvalidID
	}
}

// Now is the timestamp written to documents. MongoDB keeps milliseconds, so
// truncating here makes returned values equal to what is read back later.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
