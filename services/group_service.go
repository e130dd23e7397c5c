package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
	"github.com/mwilkosz/Meta-Back-End-Developer/repository"
)

var (
	ErrUserNotFound = errors.New("user does not exist")
	ErrNotMember    = errors.New("user is not a member")
)

// GroupService manages one named roster (manager or delivery_crew); the
// two controllers are instances of the same logic with a different name.
type GroupService struct {
	UserRepo  *repository.UserRepository
	GroupRepo *repository.GroupRepository
}

func NewGroupService(userRepo *repository.UserRepository, groupRepo *repository.GroupRepository) *GroupService {
	return &GroupService{UserRepo: userRepo, GroupRepo: groupRepo}
}

func (s *GroupService) Members(groupName string, userID *uint) ([]entity.User, error) {
	return s.GroupRepo.Members(groupName, userID)
}

// Add resolves a username to an existing account and enrolls it, creating
// the group on first use.
func (s *GroupService) Add(groupName, username string) (string, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", wrapErr(ErrUserNotFound, "User with username %s does not exist", username)
		}
		return "", err
	}

	group, err := s.GroupRepo.GetOrCreate(groupName)
	if err != nil {
		return "", err
	}
	if err := s.GroupRepo.AddMember(group, user); err != nil {
		return "", err
	}
	return fmt.Sprintf("User %s has been added to %s group", username, groupName), nil
}

// Remove drops a member by id. Removing someone who was never a member is a
// client error, never a silent success.
func (s *GroupService) Remove(groupName string, userID uint) (string, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", wrapErr(ErrUserNotFound, "User with id %d does not exist", userID)
		}
		return "", err
	}

	isMember, err := s.GroupRepo.IsMember(user.ID, groupName)
	if err != nil {
		return "", err
	}
	if !isMember {
		return "", wrapErr(ErrNotMember, "User %s is not a member of %s group", user.Username, groupName)
	}

	group, err := s.GroupRepo.GetOrCreate(groupName)
	if err != nil {
		return "", err
	}
	if err := s.GroupRepo.RemoveMember(group, user); err != nil {
		return "", err
	}
	return fmt.Sprintf("User %s has been removed from %s group", user.Username, groupName), nil
}
