package serviceimpl

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog-api/domain/dto"
	"blog-api/domain/models"
	"blog-api/domain/ports"
	"blog-api/domain/repositories"
)

// memStore in-memory state ที่ fake repositories ใช้ร่วมกัน
type memStore struct {
	users         map[uuid.UUID]*models.User
	articles      map[uuid.UUID]*models.Article
	categories    map[uuid.UUID]*models.Category
	comments      map[uuid.UUID]*models.Comment
	notifications map[uuid.UUID]*models.Notification
	// likes: target -> targetID -> userID set
	likes map[repositories.LikeTarget]map[uuid.UUID]map[uuid.UUID]bool
	// seq ใช้แทนลำดับ insert (newest first = seq มากสุดก่อน)
	seq     int64
	seqOf   map[uuid.UUID]int64
	catLink map[uuid.UUID][]uuid.UUID // articleID -> category ids
}

func newMemStore() *memStore {
	return &memStore{
		users:         map[uuid.UUID]*models.User{},
		articles:      map[uuid.UUID]*models.Article{},
		categories:    map[uuid.UUID]*models.Category{},
		comments:      map[uuid.UUID]*models.Comment{},
		notifications: map[uuid.UUID]*models.Notification{},
		likes: map[repositories.LikeTarget]map[uuid.UUID]map[uuid.UUID]bool{
			repositories.LikeTargetArticle: {},
			repositories.LikeTargetComment: {},
		},
		seqOf:   map[uuid.UUID]int64{},
		catLink: map[uuid.UUID][]uuid.UUID{},
	}
}

func (m *memStore) nextSeq(id uuid.UUID) {
	m.seq++
	m.seqOf[id] = m.seq
}

func (m *memStore) addUser(username, role string) *models.User {
	user := &models.User{
		ID:       uuid.New(),
		Email:    username + "@example.com",
		Username: username,
		Password: "hashed",
		Role:     role,
		IsActive: true,
	}
	m.users[user.ID] = user
	return user
}

func (m *memStore) addArticle(slug string, authorID uuid.UUID) *models.Article {
	article := &models.Article{
		ID:        uuid.New(),
		Title:     slug,
		Slug:      slug,
		Content:   "content of " + slug,
		Thumbnail: "https://cdn.example.com/" + slug + ".jpg",
		AuthorID:  authorID,
		Author:    m.users[authorID],
		CreatedAt: time.Now(),
	}
	m.articles[article.ID] = article
	m.nextSeq(article.ID)
	return article
}

func (m *memStore) addComment(articleID, authorID uuid.UUID, parentID *uuid.UUID, content string) *models.Comment {
	comment := &models.Comment{
		ID:        uuid.New(),
		ArticleID: articleID,
		AuthorID:  authorID,
		ParentID:  parentID,
		Content:   content,
		Author:    m.users[authorID],
		CreatedAt: time.Now(),
	}
	m.comments[comment.ID] = comment
	m.nextSeq(comment.ID)
	return comment
}

func (m *memStore) addCategory(name, slug string) *models.Category {
	category := &models.Category{
		ID:   uuid.New(),
		Name: name,
		Slug: slug,
	}
	m.categories[category.ID] = category
	return category
}

// ===== user repository =====

type fakeUserRepo struct{ store *memStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.store.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range r.store.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	r.store.users[user.ID] = user
	return nil
}

// ===== article repository =====

type fakeArticleRepo struct{ store *memStore }

func (r *fakeArticleRepo) Create(ctx context.Context, article *models.Article) error {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	article.CreatedAt = time.Now()
	r.store.articles[article.ID] = article
	r.store.nextSeq(article.ID)
	ids := make([]uuid.UUID, len(article.Categories))
	for i, c := range article.Categories {
		ids[i] = c.ID
	}
	r.store.catLink[article.ID] = ids
	return nil
}

// getters คืน copy เหมือน row ที่ scan จาก DB จะได้ไม่ mutate store ผ่าน pointer
func (r *fakeArticleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	article, ok := r.store.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *article
	return &copied, nil
}

func (r *fakeArticleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	for _, article := range r.store.articles {
		if article.Slug == slug {
			copied := *article
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeArticleRepo) GetOwned(ctx context.Context, slug string, authorID uuid.UUID) (*models.Article, error) {
	for _, article := range r.store.articles {
		if article.Slug == slug && article.AuthorID == authorID {
			copied := *article
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeArticleRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	_, err := r.GetBySlug(ctx, slug)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeArticleRepo) Update(ctx context.Context, article *models.Article) error {
	r.store.articles[article.ID] = article
	return nil
}

func (r *fakeArticleRepo) ReplaceCategories(ctx context.Context, article *models.Article, categories []models.Category) error {
	ids := make([]uuid.UUID, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	r.store.catLink[article.ID] = ids
	return nil
}

func (r *fakeArticleRepo) DeleteOwned(ctx context.Context, slug string, authorID uuid.UUID) (int64, error) {
	for id, article := range r.store.articles {
		if article.Slug == slug && article.AuthorID == authorID {
			delete(r.store.articles, id)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeArticleRepo) ListWithFilters(ctx context.Context, filter *dto.ArticleFilter) ([]*models.Article, int64, error) {
	var matched []*models.Article
	for _, article := range r.store.articles {
		if filter.Search != "" && !strings.Contains(strings.ToLower(article.Title), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.CategorySlug != "" {
			found := false
			for _, catID := range r.store.catLink[article.ID] {
				if cat, ok := r.store.categories[catID]; ok && cat.Slug == filter.CategorySlug {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		matched = append(matched, article)
	}

	sort.Slice(matched, func(i, j int) bool {
		return r.store.seqOf[matched[i].ID] > r.store.seqOf[matched[j].ID]
	})

	total := int64(len(matched))

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit
	if offset >= len(matched) {
		return []*models.Article{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeArticleRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	article, ok := r.store.articles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	article.Views++
	return nil
}

func (r *fakeArticleRepo) CountComments(ctx context.Context, articleIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := map[uuid.UUID]int64{}
	for _, comment := range r.store.comments {
		counts[comment.ArticleID]++
	}
	result := map[uuid.UUID]int64{}
	for _, id := range articleIDs {
		if c, ok := counts[id]; ok {
			result[id] = c
		}
	}
	return result, nil
}

// ===== category repository =====

type fakeCategoryRepo struct{ store *memStore }

func (r *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	r.store.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, ok := r.store.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for _, category := range r.store.categories {
		if category.Slug == slug {
			return category, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Category, error) {
	var result []models.Category
	for _, id := range ids {
		if category, ok := r.store.categories[id]; ok {
			result = append(result, *category)
		}
	}
	return result, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	r.store.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.categories, id)
	return nil
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	var result []*models.Category
	for _, category := range r.store.categories {
		result = append(result, category)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeCategoryRepo) CountArticles(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	for _, ids := range r.store.catLink {
		for _, catID := range ids {
			if catID == id {
				count++
			}
		}
	}
	return count, nil
}

// ===== comment repository =====

type fakeCommentRepo struct{ store *memStore }

func (r *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	comment.CreatedAt = time.Now()
	comment.Author = r.store.users[comment.AuthorID]
	r.store.comments[comment.ID] = comment
	r.store.nextSeq(comment.ID)
	return nil
}

func (r *fakeCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	comment, ok := r.store.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *comment
	return &copied, nil
}

func (r *fakeCommentRepo) GetOwned(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (*models.Comment, error) {
	comment, ok := r.store.comments[id]
	if !ok || comment.AuthorID != authorID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *comment
	return &copied, nil
}

func (r *fakeCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	r.store.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) DeleteOwned(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (int64, error) {
	comment, ok := r.store.comments[id]
	if !ok || comment.AuthorID != authorID {
		return 0, gorm.ErrRecordNotFound
	}

	// ลบทั้ง subtree
	toDelete := []uuid.UUID{id}
	frontier := []uuid.UUID{id}
	for len(frontier) > 0 {
		var next []uuid.UUID
		for _, c := range r.store.comments {
			if c.ParentID == nil {
				continue
			}
			for _, parentID := range frontier {
				if *c.ParentID == parentID {
					toDelete = append(toDelete, c.ID)
					next = append(next, c.ID)
				}
			}
		}
		frontier = next
	}

	for _, deleteID := range toDelete {
		delete(r.store.comments, deleteID)
	}
	return int64(len(toDelete)), nil
}

func (r *fakeCommentRepo) ListTopLevel(ctx context.Context, articleID uuid.UUID, offset, limit int) ([]*models.Comment, int64, error) {
	var matched []*models.Comment
	for _, comment := range r.store.comments {
		if comment.ArticleID == articleID && comment.ParentID == nil {
			matched = append(matched, comment)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return r.store.seqOf[matched[i].ID] > r.store.seqOf[matched[j].ID]
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []*models.Comment{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeCommentRepo) ListReplies(ctx context.Context, parentID uuid.UUID, limit int) ([]*models.Comment, error) {
	var matched []*models.Comment
	for _, comment := range r.store.comments {
		if comment.ParentID != nil && *comment.ParentID == parentID {
			matched = append(matched, comment)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return r.store.seqOf[matched[i].ID] > r.store.seqOf[matched[j].ID]
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeCommentRepo) HasReplyByAuthor(ctx context.Context, parentID uuid.UUID, authorID uuid.UUID) (bool, error) {
	for _, comment := range r.store.comments {
		if comment.ParentID != nil && *comment.ParentID == parentID && comment.AuthorID == authorID {
			return true, nil
		}
	}
	return false, nil
}

// ===== like repository =====

type fakeLikeRepo struct{ store *memStore }

func (r *fakeLikeRepo) Toggle(ctx context.Context, target repositories.LikeTarget, targetID uuid.UUID, userID uuid.UUID) (bool, int64, error) {
	set, ok := r.store.likes[target][targetID]
	if !ok {
		set = map[uuid.UUID]bool{}
		r.store.likes[target][targetID] = set
	}

	liked := false
	if set[userID] {
		delete(set, userID)
	} else {
		set[userID] = true
		liked = true
	}
	return liked, int64(len(set)), nil
}

func (r *fakeLikeRepo) Counts(ctx context.Context, target repositories.LikeTarget, targetIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := map[uuid.UUID]int64{}
	for _, id := range targetIDs {
		if set, ok := r.store.likes[target][id]; ok && len(set) > 0 {
			counts[id] = int64(len(set))
		}
	}
	return counts, nil
}

func (r *fakeLikeRepo) LikedBy(ctx context.Context, target repositories.LikeTarget, targetIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	liked := map[uuid.UUID]bool{}
	for _, id := range targetIDs {
		if set, ok := r.store.likes[target][id]; ok && set[userID] {
			liked[id] = true
		}
	}
	return liked, nil
}

// ===== notification repository =====

type fakeNotificationRepo struct{ store *memStore }

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	notification.CreatedAt = time.Now()
	r.store.notifications[notification.ID] = notification
	r.store.nextSeq(notification.ID)
	return nil
}

func (r *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientID uuid.UUID, offset, limit int) ([]*models.Notification, int64, error) {
	var matched []*models.Notification
	for _, n := range r.store.notifications {
		if n.RecipientID == recipientID {
			matched = append(matched, n)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return r.store.seqOf[matched[i].ID] > r.store.seqOf[matched[j].ID]
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []*models.Notification{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID, recipientID uuid.UUID) (int64, error) {
	n, ok := r.store.notifications[id]
	if !ok || n.RecipientID != recipientID {
		return 0, nil
	}
	n.IsRead = true
	return 1, nil
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	for _, n := range r.store.notifications {
		if n.RecipientID == recipientID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) PurgeReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	for id, n := range r.store.notifications {
		if n.IsRead && n.CreatedAt.Before(cutoff) {
			delete(r.store.notifications, id)
			deleted++
		}
	}
	return deleted, nil
}

// ===== event publisher =====

type capturePublisher struct {
	events []*ports.BlogEvent
}

func (p *capturePublisher) Publish(ctx context.Context, event *ports.BlogEvent) error {
	p.events = append(p.events, event)
	return nil
}
