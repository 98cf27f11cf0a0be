package service

import (
	"postboard/database"
	"postboard/database/model"
)

type PostService struct{}

func (s *PostService) GetAll() ([]model.Post, error) {
	db := database.GetDB()

	var posts []model.Post
	err := db.Model(model.Post{}).
		Preload("User").
		Find(&posts).
		Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) Get(id int) (*model.Post, error) {
	db := database.GetDB()

	post := &model.Post{}
	err := db.Model(model.Post{}).
		Preload("User").
		Where("id = ?", id).
		First(post).
		Error
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Create(post *model.Post) error {
	db := database.GetDB()
	if err := db.Create(post).Error; err != nil {
		return err
	}
	// reload to embed the owner in the response
	return db.Preload("User").First(post, post.Id).Error
}

func (s *PostService) Update(id int, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	db := database.GetDB()
	return db.Model(model.Post{}).
		Where("id = ?", id).
		Updates(updates).
		Error
}

func (s *PostService) Delete(id int) error {
	db := database.GetDB()
	return db.Delete(&model.Post{}, id).Error
}
