package repository

import (
	"devita_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	err := r.DB.Preload("User").First(&post, id).Error
	return &post, err
}

func (r *PostRepository) Update(post *model.Post) error {
	return r.DB.Save(post).Error
}

func (r *PostRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Post{}, id).Error
}

func (r *PostRepository) FindPage(page, limit int) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64
	if err := r.DB.Model(&model.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.DB.Preload("User").
		Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *PostRepository) FindByUserPage(userID uint, page, limit int) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64
	q := r.DB.Model(&model.Post{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.DB.Preload("User").
		Where("user_id = ?", userID).
		Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *PostRepository) IncrementViews(id uint) error {
	return r.DB.Model(&model.Post{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).
		Error
}

// IncrementLikesLocked bumps the durable like count under a row lock and
// returns the new value.
func (r *PostRepository) IncrementLikesLocked(id uint) (int64, error) {
	var likes int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var post model.Post
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&post, id).Error; err != nil {
			return err
		}
		post.Likes++
		likes = post.Likes
		return tx.Save(&post).Error
	})
	return likes, err
}

// CompareAndSetLikes writes newLikes only if the current value still equals
// oldLikes, reporting whether the write won.
func (r *PostRepository) CompareAndSetLikes(id uint, oldLikes, newLikes int64) (bool, error) {
	res := r.DB.Model(&model.Post{}).
		Where("id = ? AND likes = ?", id, oldLikes).
		Update("likes", newLikes)
	return res.RowsAffected > 0, res.Error
}

// SetLikes overwrites the durable like counts of the given posts in one
// transaction. Used by the reconciliation batch.
func (r *PostRepository) SetLikes(posts []*model.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, post := range posts {
			err := tx.Model(&model.Post{}).
				Where("id = ?", post.ID).
				Update("likes", post.Likes).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
