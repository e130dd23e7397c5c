package repository

import (
	"gorm.io/gorm"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
)

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

func (r *GroupRepository) GetOrCreate(name string) (*entity.Group, error) {
	var g entity.Group
	if err := r.DB.Where(entity.Group{Name: name}).FirstOrCreate(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// Members of a named group, optionally narrowed to a single user id.
func (r *GroupRepository) Members(name string, userID *uint) ([]entity.User, error) {
	q := r.DB.Model(&entity.User{}).
		Select("users.*").
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Joins("JOIN groups ON groups.id = user_groups.group_id").
		Where("groups.name = ?", name)
	if userID != nil {
		q = q.Where("users.id = ?", *userID)
	}
	var users []entity.User
	err := q.Find(&users).Error
	return users, err
}

func (r *GroupRepository) IsMember(userID uint, name string) (bool, error) {
	var count int64
	err := r.DB.Table("user_groups").
		Joins("JOIN groups ON groups.id = user_groups.group_id").
		Where("user_groups.user_id = ? AND groups.name = ?", userID, name).
		Count(&count).Error
	return count > 0, err
}

func (r *GroupRepository) AddMember(group *entity.Group, user *entity.User) error {
	return r.DB.Model(group).Association("Users").Append(user)
}

func (r *GroupRepository) RemoveMember(group *entity.Group, user *entity.User) error {
	return r.DB.Model(group).Association("Users").Delete(user)
}
