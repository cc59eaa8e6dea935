package enrollment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gurukul/internal/domain/course"
)

func intPtr(v int) *int { return &v }

func TestComputeExpiry(t *testing.T) {
	grantedAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	expiry := ComputeExpiry(intPtr(30), grantedAt)
	require.NotNil(t, expiry)
	assert.Equal(t, grantedAt.AddDate(0, 0, 30), *expiry)

	assert.Nil(t, ComputeExpiry(nil, grantedAt), "absent validity means lifetime")
	assert.Nil(t, ComputeExpiry(intPtr(0), grantedAt), "zero validity means lifetime")
	assert.Nil(t, ComputeExpiry(intPtr(-7), grantedAt), "negative validity means lifetime")
}

func TestComputeExpiryNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	grantedAt := time.Date(2026, 3, 10, 12, 0, 0, 0, loc)

	expiry := ComputeExpiry(intPtr(1), grantedAt)
	require.NotNil(t, expiry)
	assert.Equal(t, time.UTC, expiry.Location())
	assert.Equal(t, grantedAt.UTC().AddDate(0, 0, 1), *expiry)
}

func TestNewEntitlementValidation(t *testing.T) {
	grantedAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	future := grantedAt.Add(24 * time.Hour)

	e, err := NewEntitlement("user-1", "go-101", course.KindStandard, grantedAt, &future, "pay_abc")
	require.NoError(t, err)
	assert.Equal(t, "user-1", e.UserID())
	assert.Equal(t, "go-101", e.CourseID())
	assert.False(t, e.IsAdminGrant())

	_, err = NewEntitlement("", "go-101", course.KindStandard, grantedAt, nil, "pay_abc")
	assert.Error(t, err)

	_, err = NewEntitlement("user-1", "", course.KindStandard, grantedAt, nil, "pay_abc")
	assert.Error(t, err)

	_, err = NewEntitlement("user-1", "go-101", course.Kind("premium"), grantedAt, nil, "pay_abc")
	assert.Error(t, err)

	_, err = NewEntitlement("user-1", "go-101", course.KindStandard, grantedAt, nil, "")
	assert.Error(t, err)

	// expiry at or before grant time is rejected
	_, err = NewEntitlement("user-1", "go-101", course.KindStandard, grantedAt, &grantedAt, "pay_abc")
	assert.Error(t, err)

	past := grantedAt.Add(-time.Hour)
	_, err = NewEntitlement("user-1", "go-101", course.KindStandard, grantedAt, &past, "pay_abc")
	assert.Error(t, err)
}

func TestEntitlementIsValidAtBoundaryIsExclusive(t *testing.T) {
	grantedAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	expiry := grantedAt.Add(24 * time.Hour)

	e, err := NewEntitlement("user-1", "go-101", course.KindStandard, grantedAt, &expiry, "pay_abc")
	require.NoError(t, err)

	assert.True(t, e.IsValidAt(expiry.Add(-time.Nanosecond)))
	assert.False(t, e.IsValidAt(expiry), "access ends exactly at the expiry instant")
	assert.False(t, e.IsValidAt(expiry.Add(time.Nanosecond)))
}

func TestEntitlementLifetimeNeverExpires(t *testing.T) {
	grantedAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	e, err := NewEntitlement("user-1", "go-101", course.KindStandard, grantedAt, nil, "pay_abc")
	require.NoError(t, err)

	assert.True(t, e.IsValidAt(grantedAt.AddDate(100, 0, 0)))
}

func TestAdminReference(t *testing.T) {
	ref := AdminReference("admin-7")
	assert.True(t, strings.HasPrefix(ref, "admin:admin-7:"), "reference %q", ref)

	// The reference is also the replay guard, so two grants by the same admin
	// must never produce the same value.
	assert.NotEqual(t, ref, AdminReference("admin-7"))

	grantedAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	e, err := NewEntitlement("user-1", "go-101", course.KindLive, grantedAt, nil, ref)
	require.NoError(t, err)
	assert.True(t, e.IsAdminGrant())
}

func TestEntitlementSetID(t *testing.T) {
	grantedAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	e, err := NewEntitlement("user-1", "go-101", course.KindStandard, grantedAt, nil, "pay_abc")
	require.NoError(t, err)

	require.NoError(t, e.SetID(42))
	assert.Equal(t, uint(42), e.ID())

	assert.Error(t, e.SetID(43), "ID can only be assigned once")
}
