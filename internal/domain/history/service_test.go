package history_test

import (
	"context"
	"errors"
	"testing"

	"pawfam-api/internal/adapters/storage/memory"
	"pawfam-api/internal/domain/history"
	"pawfam-api/internal/domain/lifecycle"
	"pawfam-api/internal/platform/apperr"
	"pawfam-api/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	got []history.Entry
	err error
}

func (p *capturePublisher) Publish(ctx context.Context, e history.Entry) error {
	p.got = append(p.got, e)
	return p.err
}

func TestRecord_StoresAndPublishes(t *testing.T) {
	pub := &capturePublisher{}
	svc := history.NewService(memory.NewHistoryRepo(), pub)
	ctx := context.Background()

	e, err := svc.Record(ctx, history.RecordInput{
		Kind:       lifecycle.KindOrder,
		EntityID:   "order-1",
		Type:       history.EventStatusChanged,
		FromStatus: "pending",
		ToStatus:   "shipped",
		Actor:      history.ActorFromClaims(auth.Claims{UserID: "vendor-1", Role: auth.RoleVendor}),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, history.Actor{Type: history.ActorVendor, ID: "vendor-1"}, e.Actor)
	require.Len(t, pub.got, 1)
	assert.Equal(t, e.ID, pub.got[0].ID)

	// sin actor se registra como sistema
	e, err = svc.Record(ctx, history.RecordInput{Kind: lifecycle.KindOrder, EntityID: "order-1", Type: history.EventUpdated})
	require.NoError(t, err)
	assert.Equal(t, history.ActorSystem, e.Actor.Type)

	_, err = svc.Record(ctx, history.RecordInput{Kind: lifecycle.KindOrder, Type: history.EventUpdated})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestRecord_PublishFailureKeepsEntry(t *testing.T) {
	svc := history.NewService(memory.NewHistoryRepo(), &capturePublisher{err: errors.New("broker down")})
	ctx := context.Background()

	_, err := svc.Record(ctx, history.RecordInput{Kind: lifecycle.KindBooking, EntityID: "b-1", Type: history.EventCreated, ToStatus: "pending"})
	require.NoError(t, err)

	entries, err := svc.ListByEntity(ctx, lifecycle.KindBooking, "b-1", 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestListByEntity_OrderAndLimit(t *testing.T) {
	svc := history.NewService(memory.NewHistoryRepo(), nil)
	ctx := context.Background()

	for _, st := range []string{"pending", "confirmed", "completed"} {
		svc.Track(ctx, history.RecordInput{Kind: lifecycle.KindBooking, EntityID: "b-1", Type: history.EventStatusChanged, ToStatus: st})
	}
	svc.Track(ctx, history.RecordInput{Kind: lifecycle.KindOrder, EntityID: "b-1", Type: history.EventCreated, ToStatus: "pending"})

	all, err := svc.ListByEntity(ctx, lifecycle.KindBooking, "b-1", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "pending", all[0].ToStatus)
	assert.Equal(t, "completed", all[2].ToStatus)

	two, err := svc.ListByEntity(ctx, lifecycle.KindBooking, "b-1", 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestTrack_NilServiceIsNoop(t *testing.T) {
	var svc *history.Service
	assert.NotPanics(t, func() {
		svc.Track(context.Background(), history.RecordInput{Kind: lifecycle.KindOrder, EntityID: "x", Type: history.EventCreated})
	})
}
