// Package queries contains read-only use cases. Handlers read straight from the
// database instead of loading aggregates.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery looks an order up by the tracking id handed to the customer.
//
// Example:
//
//	query, err := NewTrackOrderQuery(trackingID)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown tracking id
//	}
type TrackOrderQuery struct {
	trackingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewTrackOrderQuery(trackingID kernel.UUID) (TrackOrderQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) TrackingID() kernel.UUID {
	return q.trackingID
}

// TrackOrderQueryResponse is the customer's view of an order.
type TrackOrderQueryResponse struct {
	TrackingID      kernel.UUID
	Status          order.Status
	FailureMessages []string
}
