package service

import (
	"testing"

	"go-autoshop/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfilePartial(t *testing.T) {
	db := newTestDB(t)
	seedOwner(t, db)
	svc := NewAccountService(repository.NewUserRepo(db))

	name := "Northside Auto"
	phone := " 555-0100 "
	resp, err := svc.UpdateProfile(testOwner, &UpdateProfileRequest{
		ShopName:    &name,
		PhoneNumber: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, "Northside Auto", resp.ShopName)
	assert.Equal(t, "555-0100", resp.PhoneNumber)

	// Nil fields stay as they were.
	addr := "12 King St"
	resp, err = svc.UpdateProfile(testOwner, &UpdateProfileRequest{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, "Northside Auto", resp.ShopName)
	assert.Equal(t, "12 King St", resp.Address)
}

func TestSetReportsPassword(t *testing.T) {
	db := newTestDB(t)
	seedOwner(t, db)
	svc := NewAccountService(repository.NewUserRepo(db))

	profile, err := svc.GetProfile(testOwner)
	require.NoError(t, err)
	assert.False(t, profile.HasReportsGate)

	require.NoError(t, svc.SetReportsPassword(testOwner, "reports-pin"))

	profile, err = svc.GetProfile(testOwner)
	require.NoError(t, err)
	assert.True(t, profile.HasReportsGate)
}
