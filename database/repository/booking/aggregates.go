// File: database/repository/booking/aggregates.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"storably/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetOverlapping applies the range-overlap predicate:
// start_date <= requested.end AND (end_date missing OR end_date >= requested.start).
func (repo *mongoBookingRepo) GetOverlapping(ctx context.Context, warehouseID string, bookingType models.BookingType, startDate, endDate string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"warehouse_id": warehouseID,
		"type":         bookingType,
		"status":       bson.M{"$in": models.ActiveBookingStatuses()},
		"start_date":   bson.M{"$lte": endDate},
		"$or": bson.A{
			bson.M{"end_date": bson.M{"$exists": false}},
			bson.M{"end_date": ""},
			bson.M{"end_date": bson.M{"$gte": startDate}},
		},
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overlapping bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (repo *mongoBookingRepo) CountByStatus(ctx context.Context, statuses []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := repo.coll.CountDocuments(ctx, bson.M{"status": bson.M{"$in": statuses}})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return n, nil
}

// RevenueTotal sums total_price over every non-cancelled booking.
func (repo *mongoBookingRepo) RevenueTotal(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status": bson.M{"$ne": models.BookingStatusCancelled},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total_price"},
		}}},
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, fmt.Errorf("decode error: %w", err)
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}

// ListDueForTransition returns bookings in the given status whose relevant
// date boundary has passed: start_date for confirmed, end_date for active.
func (repo *mongoBookingRepo) ListDueForTransition(ctx context.Context, status, dateCutoff string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var filter bson.M
	switch status {
	case models.BookingStatusConfirmed:
		filter = bson.M{"status": status, "start_date": bson.M{"$lte": dateCutoff}}
	case models.BookingStatusActive:
		filter = bson.M{
			"status":   status,
			"end_date": bson.M{"$nin": bson.A{nil, ""}, "$lt": dateCutoff},
		}
	default:
		return nil, fmt.Errorf("no transition defined for status %q", status)
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch due bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
