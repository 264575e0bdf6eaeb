package postgres

import (
	"context"

	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
	"gorm.io/gorm"
)

// syncCelebritySequence keeps the serial sequence ahead of explicitly
// inserted ids so auto-assigned ids stay monotonic.
func syncCelebritySequence(tx *gorm.DB) error {
	return tx.Exec(
		"SELECT setval(pg_get_serial_sequence('celebrities','id'), (SELECT COALESCE(MAX(id),1) FROM celebrities))",
	).Error
}

func (s *Store) GetCelebrities(ctx context.Context) ([]models.Celebrity, error) {
	var out []models.Celebrity
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) GetCelebrityByID(ctx context.Context, id uint) (models.Celebrity, error) {
	var c models.Celebrity
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return models.Celebrity{}, translate(err)
	}
	return c, nil
}

func (s *Store) GetCelebrityByUserID(ctx context.Context, userID uint) (models.Celebrity, error) {
	var c models.Celebrity
	if err := s.db.WithContext(ctx).First(&c, "user_id = ?", userID).Error; err != nil {
		return models.Celebrity{}, translate(err)
	}
	return c, nil
}

func (s *Store) GetCelebritiesByCategory(ctx context.Context, category string) ([]models.Celebrity, error) {
	var out []models.Celebrity
	err := s.db.WithContext(ctx).Where("category = ?", category).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) CreateCelebrity(ctx context.Context, c models.Celebrity) (models.Celebrity, error) {
	c.ID = 0
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return models.Celebrity{}, translate(err)
	}
	return c, nil
}

func (s *Store) CreateCelebrityWithID(ctx context.Context, c models.Celebrity, id uint) (models.Celebrity, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Celebrity{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return storage.ErrIDConflict
		}
		c.ID = id
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		return syncCelebritySequence(tx)
	})
	if err != nil {
		return models.Celebrity{}, err
	}
	return c, nil
}

func (s *Store) ReassignCelebrityID(ctx context.Context, id uint) (models.Celebrity, error) {
	var moved models.Celebrity
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Celebrity
		if err := tx.First(&c, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Delete(&models.Celebrity{}, "id = ?", id).Error; err != nil {
			return err
		}
		c.ID = 0
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		moved = c
		return nil
	})
	if err != nil {
		return models.Celebrity{}, err
	}
	return moved, nil
}

func (s *Store) UpdateCelebrity(ctx context.Context, id uint, c models.Celebrity) (models.Celebrity, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Celebrity{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return models.Celebrity{}, err
	}
	if count == 0 {
		return models.Celebrity{}, storage.ErrNotFound
	}
	c.ID = id
	// Save writes every field, replacing the whole record.
	if err := s.db.WithContext(ctx).Save(&c).Error; err != nil {
		return models.Celebrity{}, translate(err)
	}
	return c, nil
}

func (s *Store) DeleteCelebrity(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Celebrity{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (s *Store) GetBrands(ctx context.Context) ([]models.Brand, error) {
	var out []models.Brand
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) GetBrandByID(ctx context.Context, id uint) (models.Brand, error) {
	var b models.Brand
	if err := s.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return models.Brand{}, translate(err)
	}
	return b, nil
}

func (s *Store) CreateBrand(ctx context.Context, b models.Brand) (models.Brand, error) {
	b.ID = 0
	if b.CelebWearers == nil {
		b.CelebWearers = []string{}
	}
	if err := s.db.WithContext(ctx).Create(&b).Error; err != nil {
		return models.Brand{}, translate(err)
	}
	return b, nil
}

func (s *Store) GetCelebrityBrands(ctx context.Context, celebrityID uint) ([]models.CelebrityBrand, error) {
	var out []models.CelebrityBrand
	err := s.db.WithContext(ctx).Where("celebrity_id = ?", celebrityID).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) CreateCelebrityBrand(ctx context.Context, cb models.CelebrityBrand) (models.CelebrityBrand, error) {
	cb.ID = 0
	if err := s.db.WithContext(ctx).Create(&cb).Error; err != nil {
		return models.CelebrityBrand{}, translate(err)
	}
	return cb, nil
}

func (s *Store) GetCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) GetCategoryByID(ctx context.Context, id uint) (models.Category, error) {
	var c models.Category
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return models.Category{}, translate(err)
	}
	return c, nil
}

func (s *Store) CreateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	c.ID = 0
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return models.Category{}, translate(err)
	}
	return c, nil
}

func (s *Store) UpdateCategory(ctx context.Context, id uint, c models.Category) (models.Category, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return models.Category{}, err
	}
	if count == 0 {
		return models.Category{}, storage.ErrNotFound
	}
	c.ID = id
	if err := s.db.WithContext(ctx).Save(&c).Error; err != nil {
		return models.Category{}, translate(err)
	}
	return c, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (s *Store) GetTournaments(ctx context.Context) ([]models.Tournament, error) {
	var out []models.Tournament
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) GetTournamentByID(ctx context.Context, id uint) (models.Tournament, error) {
	var t models.Tournament
	if err := s.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return models.Tournament{}, translate(err)
	}
	return t, nil
}

func (s *Store) CreateTournament(ctx context.Context, t models.Tournament) (models.Tournament, error) {
	t.ID = 0
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return models.Tournament{}, translate(err)
	}
	return t, nil
}

func (s *Store) GetTournamentOutfits(ctx context.Context) ([]models.TournamentOutfit, error) {
	var out []models.TournamentOutfit
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) GetTournamentOutfitByID(ctx context.Context, id uint) (models.TournamentOutfit, error) {
	var o models.TournamentOutfit
	if err := s.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return models.TournamentOutfit{}, translate(err)
	}
	return o, nil
}

func (s *Store) GetTournamentOutfitsByCelebrity(ctx context.Context, celebrityID uint) ([]models.TournamentOutfit, error) {
	var out []models.TournamentOutfit
	err := s.db.WithContext(ctx).Where("celebrity_id = ?", celebrityID).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) GetTournamentOutfitsByTournament(ctx context.Context, tournamentID uint) ([]models.TournamentOutfit, error) {
	var out []models.TournamentOutfit
	err := s.db.WithContext(ctx).Where("tournament_id = ?", tournamentID).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) CreateTournamentOutfit(ctx context.Context, o models.TournamentOutfit) (models.TournamentOutfit, error) {
	o.ID = 0
	if o.AssociatedBrands == nil {
		o.AssociatedBrands = []uint{}
	}
	if err := s.db.WithContext(ctx).Create(&o).Error; err != nil {
		return models.TournamentOutfit{}, translate(err)
	}
	return o, nil
}

func (s *Store) GetPlans(ctx context.Context) ([]models.Plan, error) {
	var out []models.Plan
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) GetPlanByID(ctx context.Context, id uint) (models.Plan, error) {
	var p models.Plan
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return models.Plan{}, translate(err)
	}
	return p, nil
}

func (s *Store) CreatePlan(ctx context.Context, p models.Plan) (models.Plan, error) {
	p.ID = 0
	if p.Features == nil {
		p.Features = []string{}
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.Plan{}, translate(err)
	}
	return p, nil
}

func (s *Store) UpdatePlan(ctx context.Context, id uint, update models.PlanUpdate) (models.Plan, error) {
	var p models.Plan
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return models.Plan{}, translate(err)
	}
	update.Apply(&p)
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return models.Plan{}, translate(err)
	}
	return p, nil
}

func (s *Store) DeletePlan(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Plan{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (s *Store) GetCelebrityProducts(ctx context.Context) ([]models.CelebrityProduct, error) {
	var out []models.CelebrityProduct
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) GetCelebrityProductByID(ctx context.Context, id uint) (models.CelebrityProduct, error) {
	var p models.CelebrityProduct
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return models.CelebrityProduct{}, translate(err)
	}
	return p, nil
}

func (s *Store) GetCelebrityProductsByCelebrity(ctx context.Context, celebrityID uint) ([]models.CelebrityProduct, error) {
	var out []models.CelebrityProduct
	err := s.db.WithContext(ctx).Where("celebrity_id = ?", celebrityID).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) CreateCelebrityProduct(ctx context.Context, p models.CelebrityProduct) (models.CelebrityProduct, error) {
	p.ID = 0
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.CelebrityProduct{}, translate(err)
	}
	return p, nil
}

func (s *Store) UpdateCelebrityProduct(ctx context.Context, id uint, p models.CelebrityProduct) (models.CelebrityProduct, error) {
	var existing models.CelebrityProduct
	if err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		return models.CelebrityProduct{}, translate(err)
	}
	p.ID = id
	p.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return models.CelebrityProduct{}, translate(err)
	}
	return p, nil
}

func (s *Store) DeleteCelebrityProduct(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.CelebrityProduct{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (s *Store) GetBlogs(ctx context.Context) ([]models.Blog, error) {
	var out []models.Blog
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) GetBlogByID(ctx context.Context, id uint) (models.Blog, error) {
	var b models.Blog
	if err := s.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return models.Blog{}, translate(err)
	}
	return b, nil
}

func (s *Store) CreateBlog(ctx context.Context, b models.Blog) (models.Blog, error) {
	b.ID = 0
	if err := s.db.WithContext(ctx).Create(&b).Error; err != nil {
		return models.Blog{}, translate(err)
	}
	return b, nil
}

func (s *Store) UpdateBlog(ctx context.Context, id uint, b models.Blog) (models.Blog, error) {
	var existing models.Blog
	if err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		return models.Blog{}, translate(err)
	}
	b.ID = id
	b.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(&b).Error; err != nil {
		return models.Blog{}, translate(err)
	}
	return b, nil
}

func (s *Store) DeleteBlog(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Blog{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
