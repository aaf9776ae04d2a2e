package service

import (
	"strings"

	"go-autoshop/internal/model"
	"go-autoshop/internal/repository"
)

type AccountService interface {
	GetProfile(ownerEmail string) (*model.UserResponse, error)
	UpdateProfile(ownerEmail string, req *UpdateProfileRequest) (*model.UserResponse, error)
	SetReportsPassword(ownerEmail, password string) error
}

// UpdateProfileRequest carries the shop details printed on invoices.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	ShopName    *string `json:"shop_name"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number"`
}

type accountService struct {
	userRepo repository.UserRepository
}

func NewAccountService(userRepo repository.UserRepository) AccountService {
	return &accountService{userRepo: userRepo}
}

func (s *accountService) GetProfile(ownerEmail string) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ownerEmail)
	if err != nil {
		return nil, ErrUserNotFound
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *accountService) UpdateProfile(ownerEmail string, req *UpdateProfileRequest) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ownerEmail)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.ShopName != nil {
		user.ShopName = strings.TrimSpace(*req.ShopName)
	}
	if req.Address != nil {
		user.Address = strings.TrimSpace(*req.Address)
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
	}
	user.UpdatedBy = ownerEmail

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *accountService) SetReportsPassword(ownerEmail, password string) error {
	user, err := s.userRepo.FindByEmail(ownerEmail)
	if err != nil {
		return ErrUserNotFound
	}

	if err := user.SetReportsPassword(password); err != nil {
		return err
	}
	user.UpdatedBy = ownerEmail
	return s.userRepo.Update(user)
}
