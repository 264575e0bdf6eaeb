package memstore

import (
	"context"
	"time"

	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

func (s *Store) GetCelebrities(ctx context.Context) ([]models.Celebrity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Celebrity, 0, len(s.celebrities))
	for _, id := range sortedIDs(s.celebrities) {
		out = append(out, s.celebrities[id])
	}
	return out, nil
}

func (s *Store) GetCelebrityByID(ctx context.Context, id uint) (models.Celebrity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.celebrities[id]
	if !ok {
		return models.Celebrity{}, storage.ErrNotFound
	}
	return c, nil
}

func (s *Store) GetCelebrityByUserID(ctx context.Context, userID uint) (models.Celebrity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.celebrities {
		if c.UserID != nil && *c.UserID == userID {
			return c, nil
		}
	}
	return models.Celebrity{}, storage.ErrNotFound
}

func (s *Store) GetCelebritiesByCategory(ctx context.Context, category string) ([]models.Celebrity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Celebrity, 0)
	for _, id := range sortedIDs(s.celebrities) {
		if c := s.celebrities[id]; c.Category == category {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) CreateCelebrity(ctx context.Context, c models.Celebrity) (models.Celebrity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = next(&s.celebrityID)
	s.celebrities[c.ID] = c
	return c, nil
}

func (s *Store) CreateCelebrityWithID(ctx context.Context, c models.Celebrity, id uint) (models.Celebrity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.celebrities[id]; ok {
		return models.Celebrity{}, storage.ErrIDConflict
	}
	c.ID = id
	s.celebrities[id] = c
	bump(&s.celebrityID, id)
	return c, nil
}

func (s *Store) ReassignCelebrityID(ctx context.Context, id uint) (models.Celebrity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.celebrities[id]
	if !ok {
		return models.Celebrity{}, storage.ErrNotFound
	}
	delete(s.celebrities, id)
	c.ID = next(&s.celebrityID)
	s.celebrities[c.ID] = c
	return c, nil
}

func (s *Store) UpdateCelebrity(ctx context.Context, id uint, c models.Celebrity) (models.Celebrity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.celebrities[id]; !ok {
		return models.Celebrity{}, storage.ErrNotFound
	}
	c.ID = id
	s.celebrities[id] = c
	return c, nil
}

func (s *Store) DeleteCelebrity(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.celebrities[id]; !ok {
		return false, nil
	}
	delete(s.celebrities, id)
	return true, nil
}

func (s *Store) GetBrands(ctx context.Context) ([]models.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Brand, 0, len(s.brands))
	for _, id := range sortedIDs(s.brands) {
		out = append(out, s.brands[id])
	}
	return out, nil
}

func (s *Store) GetBrandByID(ctx context.Context, id uint) (models.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.brands[id]
	if !ok {
		return models.Brand{}, storage.ErrNotFound
	}
	return b, nil
}

func (s *Store) CreateBrand(ctx context.Context, b models.Brand) (models.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = next(&s.brandID)
	if b.CelebWearers == nil {
		b.CelebWearers = []string{}
	}
	s.brands[b.ID] = b
	return b, nil
}

func (s *Store) GetCelebrityBrands(ctx context.Context, celebrityID uint) ([]models.CelebrityBrand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CelebrityBrand, 0)
	for _, id := range sortedIDs(s.celebrityBrands) {
		if cb := s.celebrityBrands[id]; cb.CelebrityID == celebrityID {
			out = append(out, cb)
		}
	}
	return out, nil
}

func (s *Store) CreateCelebrityBrand(ctx context.Context, cb models.CelebrityBrand) (models.CelebrityBrand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cb.ID = next(&s.celebrityBrandID)
	s.celebrityBrands[cb.ID] = cb
	return cb, nil
}

func (s *Store) GetCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, 0, len(s.categories))
	for _, id := range sortedIDs(s.categories) {
		out = append(out, s.categories[id])
	}
	return out, nil
}

func (s *Store) GetCategoryByID(ctx context.Context, id uint) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return models.Category{}, storage.ErrNotFound
	}
	return c, nil
}

func (s *Store) CreateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = next(&s.categoryID)
	s.categories[c.ID] = c
	return c, nil
}

func (s *Store) UpdateCategory(ctx context.Context, id uint, c models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return models.Category{}, storage.ErrNotFound
	}
	c.ID = id
	s.categories[id] = c
	return c, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return false, nil
	}
	delete(s.categories, id)
	return true, nil
}

func (s *Store) GetTournaments(ctx context.Context) ([]models.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Tournament, 0, len(s.tournaments))
	for _, id := range sortedIDs(s.tournaments) {
		out = append(out, s.tournaments[id])
	}
	return out, nil
}

func (s *Store) GetTournamentByID(ctx context.Context, id uint) (models.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tournaments[id]
	if !ok {
		return models.Tournament{}, storage.ErrNotFound
	}
	return t, nil
}

func (s *Store) CreateTournament(ctx context.Context, t models.Tournament) (models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = next(&s.tournamentID)
	s.tournaments[t.ID] = t
	return t, nil
}

func (s *Store) GetTournamentOutfits(ctx context.Context) ([]models.TournamentOutfit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TournamentOutfit, 0, len(s.tournamentOutfits))
	for _, id := range sortedIDs(s.tournamentOutfits) {
		out = append(out, s.tournamentOutfits[id])
	}
	return out, nil
}

func (s *Store) GetTournamentOutfitByID(ctx context.Context, id uint) (models.TournamentOutfit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.tournamentOutfits[id]
	if !ok {
		return models.TournamentOutfit{}, storage.ErrNotFound
	}
	return o, nil
}

func (s *Store) GetTournamentOutfitsByCelebrity(ctx context.Context, celebrityID uint) ([]models.TournamentOutfit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TournamentOutfit, 0)
	for _, id := range sortedIDs(s.tournamentOutfits) {
		if o := s.tournamentOutfits[id]; o.CelebrityID == celebrityID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Store) GetTournamentOutfitsByTournament(ctx context.Context, tournamentID uint) ([]models.TournamentOutfit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TournamentOutfit, 0)
	for _, id := range sortedIDs(s.tournamentOutfits) {
		if o := s.tournamentOutfits[id]; o.TournamentID == tournamentID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Store) CreateTournamentOutfit(ctx context.Context, o models.TournamentOutfit) (models.TournamentOutfit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = next(&s.tournamentOutfitID)
	if o.AssociatedBrands == nil {
		o.AssociatedBrands = []uint{}
	}
	s.tournamentOutfits[o.ID] = o
	return o, nil
}

func (s *Store) GetPlans(ctx context.Context) ([]models.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Plan, 0, len(s.plans))
	for _, id := range sortedIDs(s.plans) {
		out = append(out, s.plans[id])
	}
	return out, nil
}

func (s *Store) GetPlanByID(ctx context.Context, id uint) (models.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.plans[id]
	if !ok {
		return models.Plan{}, storage.ErrNotFound
	}
	return p, nil
}

func (s *Store) CreatePlan(ctx context.Context, p models.Plan) (models.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = next(&s.planID)
	if p.Features == nil {
		p.Features = []string{}
	}
	s.plans[p.ID] = p
	return p, nil
}

func (s *Store) UpdatePlan(ctx context.Context, id uint, update models.PlanUpdate) (models.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plans[id]
	if !ok {
		return models.Plan{}, storage.ErrNotFound
	}
	update.Apply(&p)
	s.plans[id] = p
	return p, nil
}

func (s *Store) DeletePlan(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.plans[id]; !ok {
		return false, nil
	}
	delete(s.plans, id)
	return true, nil
}

func (s *Store) GetCelebrityProducts(ctx context.Context) ([]models.CelebrityProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CelebrityProduct, 0, len(s.products))
	for _, id := range sortedIDs(s.products) {
		out = append(out, s.products[id])
	}
	return out, nil
}

func (s *Store) GetCelebrityProductByID(ctx context.Context, id uint) (models.CelebrityProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return models.CelebrityProduct{}, storage.ErrNotFound
	}
	return p, nil
}

func (s *Store) GetCelebrityProductsByCelebrity(ctx context.Context, celebrityID uint) ([]models.CelebrityProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CelebrityProduct, 0)
	for _, id := range sortedIDs(s.products) {
		if p := s.products[id]; p.CelebrityID == celebrityID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) CreateCelebrityProduct(ctx context.Context, p models.CelebrityProduct) (models.CelebrityProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = next(&s.productID)
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products[p.ID] = p
	return p, nil
}

func (s *Store) UpdateCelebrityProduct(ctx context.Context, id uint, p models.CelebrityProduct) (models.CelebrityProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.products[id]
	if !ok {
		return models.CelebrityProduct{}, storage.ErrNotFound
	}
	p.ID = id
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	s.products[id] = p
	return p, nil
}

func (s *Store) DeleteCelebrityProduct(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}

func (s *Store) GetBlogs(ctx context.Context) ([]models.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Blog, 0, len(s.blogs))
	for _, id := range sortedIDs(s.blogs) {
		out = append(out, s.blogs[id])
	}
	return out, nil
}

func (s *Store) GetBlogByID(ctx context.Context, id uint) (models.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blogs[id]
	if !ok {
		return models.Blog{}, storage.ErrNotFound
	}
	return b, nil
}

func (s *Store) CreateBlog(ctx context.Context, b models.Blog) (models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = next(&s.blogID)
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	s.blogs[b.ID] = b
	return b, nil
}

func (s *Store) UpdateBlog(ctx context.Context, id uint, b models.Blog) (models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.blogs[id]
	if !ok {
		return models.Blog{}, storage.ErrNotFound
	}
	b.ID = id
	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = time.Now()
	s.blogs[id] = b
	return b, nil
}

func (s *Store) DeleteBlog(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blogs[id]; !ok {
		return false, nil
	}
	delete(s.blogs, id)
	return true, nil
}
