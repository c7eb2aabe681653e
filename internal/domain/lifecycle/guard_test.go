package lifecycle

import (
	"testing"

	"pawfam-api/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
)

func TestApplicationGuard(t *testing.T) {
	cases := []struct {
		status    ApplicationStatus
		canEdit   bool
		canRevoke bool
	}{
		{ApplicationPending, true, true},
		{ApplicationUnderReview, true, true},
		{ApplicationScheduled, true, true},
		{ApplicationApproved, false, false},
		{ApplicationRejected, false, false},
		{ApplicationStatus("legacy"), true, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.canEdit, tc.status.CanEdit())
			assert.Equal(t, tc.canRevoke, tc.status.CanRevoke())
			assert.Equal(t, tc.canEdit, CheckApplicationEdit(tc.status) == nil)
			assert.Equal(t, tc.canRevoke, CheckApplicationRevoke(tc.status) == nil)
		})
	}
}

func TestBookingGuard(t *testing.T) {
	cases := []struct {
		status    BookingStatus
		canEdit   bool
		canCancel bool
	}{
		{BookingPending, true, true},
		{BookingConfirmed, true, true},
		{BookingCompleted, false, false},
		{BookingCancelled, false, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.canEdit, tc.status.CanEdit())
			assert.Equal(t, tc.canCancel, tc.status.CanCancel())
			assert.Equal(t, tc.canEdit, CheckBookingEdit(tc.status) == nil)
			assert.Equal(t, tc.canCancel, CheckBookingCancel(tc.status) == nil)
		})
	}
}

func TestOrderGuard(t *testing.T) {
	cases := []struct {
		status         OrderStatus
		canEdit        bool
		canEditAddress bool
		canCancel      bool
	}{
		{OrderPending, true, true, true},
		{OrderProcessing, true, true, true},
		{OrderShipped, true, false, false},
		{OrderDelivered, false, false, false},
		{OrderCancelled, false, false, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.canEdit, tc.status.CanEdit())
			assert.Equal(t, tc.canEditAddress, tc.status.CanEditAddress())
			assert.Equal(t, tc.canCancel, tc.status.CanCancel())
			assert.Equal(t, tc.canEditAddress, CheckOrderAddressEdit(tc.status) == nil)
			assert.Equal(t, tc.canCancel, CheckOrderCancel(tc.status) == nil)
		})
	}
}

func TestGuardFailuresArePreconditions(t *testing.T) {
	assert.ErrorIs(t, CheckApplicationEdit(ApplicationApproved), apperr.ErrPreconditionFailed)
	assert.ErrorIs(t, CheckBookingCancel(BookingCompleted), apperr.ErrPreconditionFailed)

	err := CheckOrderCancel(OrderShipped)
	assert.ErrorIs(t, err, apperr.ErrPreconditionFailed)
	assert.Contains(t, err.Error(), "shipped")

	err = CheckOrderAddressEdit(OrderDelivered)
	assert.Contains(t, err.Error(), "delivered or cancelled")
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range ApplicationStatuses() {
		assert.True(t, IsValidStatus(KindApplication, string(s)))
	}
	for _, s := range BookingStatuses() {
		assert.True(t, IsValidStatus(KindBooking, string(s)))
	}
	for _, s := range OrderStatuses() {
		assert.True(t, IsValidStatus(KindOrder, string(s)))
	}

	assert.False(t, IsValidStatus(KindApplication, "shipped"))
	assert.False(t, IsValidStatus(KindBooking, "under_review"))
	assert.False(t, IsValidStatus(KindOrder, "Pending"))
	assert.False(t, IsValidStatus(KindOrder, ""))
	assert.False(t, IsValidStatus(Kind("pet"), "pending"))
}

func TestParseStatusRejectsUnknownAsInvalidArgument(t *testing.T) {
	_, err := ParseOrderStatus("lost")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	s, err := ParseBookingStatus("confirmed")
	assert.NoError(t, err)
	assert.Equal(t, BookingConfirmed, s)

	_, err = ParseApplicationStatus("approved ")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}
