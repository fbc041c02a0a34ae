package repositories

import (
	"errors"

	"blog-api/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	List(publishedOnly bool) ([]models.Post, error)
	Update(post *models.Post) error
	Delete(id uint) error
	ToggleLike(postID, userID uint) ([]uint, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.id asc")
		}).
		Preload("Comments.Author").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}

	likes, err := r.likeUserIDs(r.db, post.ID)
	if err != nil {
		return nil, err
	}
	post.Likes = likes

	return &post, nil
}

func (r *postRepository) List(publishedOnly bool) ([]models.Post, error) {
	var posts []models.Post

	query := r.db.Preload("Author").Order("created_at desc")
	if publishedOnly {
		query = query.Where("status = ?", models.StatusPublished)
	}

	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}

	if err := r.loadLikes(posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// Update saves the post while leaving comment_count alone; only the
// comment repository's transactional deltas may touch that column.
func (r *postRepository) Update(post *models.Post) error {
	return r.db.Omit("comment_count", "Comments", "Author").Save(post).Error
}

// Delete removes the post together with its comments and like rows in one
// transaction, so a failed delete never leaves orphaned comments behind.
func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

// ToggleLike removes the caller's like row if present, otherwise inserts
// one. Running inside a transaction keeps concurrent toggles from losing
// updates; the composite primary key on post_likes rules out duplicates
// even if two inserts race.
func (r *postRepository) ToggleLike(postID, userID uint) ([]uint, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&models.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		err := tx.Create(&models.PostLike{PostID: postID, UserID: userID}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent request already inserted the like.
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return r.likeUserIDs(r.db, postID)
}

func (r *postRepository) likeUserIDs(db *gorm.DB, postID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := db.Model(&models.PostLike{}).
		Where("post_id = ?", postID).
		Order("created_at asc").
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *postRepository) loadLikes(posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	postIDs := make([]uint, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
	}

	var rows []models.PostLike
	if err := r.db.Where("post_id IN ?", postIDs).Find(&rows).Error; err != nil {
		return err
	}

	byPost := make(map[uint][]uint, len(posts))
	for _, row := range rows {
		byPost[row.PostID] = append(byPost[row.PostID], row.UserID)
	}

	for i := range posts {
		if likes, ok := byPost[posts[i].ID]; ok {
			posts[i].Likes = likes
		} else {
			posts[i].Likes = make([]uint, 0)
		}
	}

	return nil
}
