package schedule

import (
	"context"
	"errors"
	"time"

	domain "github.com/studioflow/studio-scheduler/internal/domain/schedule"
	"github.com/studioflow/studio-scheduler/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo guarda tudo em memória e registra as escritas, para os testes
// afirmarem que um use case NÃO tocou o banco.
type fakeRepo struct {
	studio *models.Studio
	staff  map[uint]models.StaffMember
	blocks map[uint]models.TimeBlock

	nextID uint

	created      []models.TimeBlock
	batchCreated [][]models.TimeBlock
	updated      []models.TimeBlock
	deleted      []uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		studio: &models.Studio{ID: 1, Name: "Studio Aurora", Slug: "studio-aurora", Timezone: "UTC"},
		staff:  map[uint]models.StaffMember{},
		blocks: map[uint]models.TimeBlock{},
		nextID: 100,
	}
}

func (r *fakeRepo) addStaff(s models.StaffMember) models.StaffMember {
	if s.StudioID == 0 {
		s.StudioID = r.studio.ID
	}
	r.staff[s.ID] = s
	return s
}

func (r *fakeRepo) addBlock(b models.TimeBlock) models.TimeBlock {
	if b.StudioID == 0 {
		b.StudioID = r.studio.ID
	}
	if b.ID == 0 {
		r.nextID++
		b.ID = r.nextID
	}
	r.blocks[b.ID] = b
	return b
}

func (r *fakeRepo) GetStudioByID(_ context.Context, id uint) (*models.Studio, error) {
	if r.studio == nil || r.studio.ID != id {
		return nil, errNotFound
	}
	s := *r.studio
	return &s, nil
}

func (r *fakeRepo) GetStaffMember(_ context.Context, studioID, staffID uint) (*models.StaffMember, error) {
	s, ok := r.staff[staffID]
	if !ok || s.StudioID != studioID {
		return nil, errNotFound
	}
	return &s, nil
}

func (r *fakeRepo) ListStaff(_ context.Context, studioID uint) ([]models.StaffMember, error) {
	var out []models.StaffMember
	for _, s := range r.staff {
		if s.StudioID == studioID && s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateTimeBlock(_ context.Context, block *models.TimeBlock) error {
	r.nextID++
	block.ID = r.nextID
	r.blocks[block.ID] = *block
	r.created = append(r.created, *block)
	return nil
}

func (r *fakeRepo) CreateTimeBlocks(_ context.Context, blocks []models.TimeBlock) error {
	for i := range blocks {
		r.nextID++
		blocks[i].ID = r.nextID
		r.blocks[blocks[i].ID] = blocks[i]
	}
	r.batchCreated = append(r.batchCreated, blocks)
	return nil
}

func (r *fakeRepo) GetTimeBlock(_ context.Context, studioID, blockID uint) (*models.TimeBlock, error) {
	b, ok := r.blocks[blockID]
	if !ok || b.StudioID != studioID {
		return nil, errNotFound
	}
	return &b, nil
}

func (r *fakeRepo) UpdateTimeBlock(_ context.Context, block *models.TimeBlock) error {
	r.blocks[block.ID] = *block
	r.updated = append(r.updated, *block)
	return nil
}

func (r *fakeRepo) DeleteTimeBlock(_ context.Context, studioID, blockID uint) error {
	b, ok := r.blocks[blockID]
	if !ok || b.StudioID != studioID {
		return errNotFound
	}
	delete(r.blocks, blockID)
	r.deleted = append(r.deleted, blockID)
	return nil
}

func (r *fakeRepo) ListTimeBlocks(_ context.Context, studioID uint) ([]models.TimeBlock, error) {
	var out []models.TimeBlock
	for _, b := range r.blocks {
		if b.StudioID == studioID && b.Active {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListTimeBlocksForWeek(_ context.Context, studioID uint, weekStart time.Time) ([]models.TimeBlock, error) {
	var out []models.TimeBlock
	for _, b := range r.blocks {
		if b.StudioID == studioID && b.Active && domain.SameWeek(b, weekStart) {
			out = append(out, b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeCache registra hits, sets e invalidações.
type fakeCache struct {
	data        map[uint][]domain.StaffAvailability
	sets        int
	hits        int
	invalidated []uint
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[uint][]domain.StaffAvailability{}}
}

func (c *fakeCache) Get(_ context.Context, studioID uint) ([]domain.StaffAvailability, bool) {
	out, ok := c.data[studioID]
	if ok {
		c.hits++
	}
	return out, ok
}

func (c *fakeCache) Set(_ context.Context, studioID uint, data []domain.StaffAvailability) {
	c.sets++
	c.data[studioID] = data
}

func (c *fakeCache) Invalidate(_ context.Context, studioID uint) {
	delete(c.data, studioID)
	c.invalidated = append(c.invalidated, studioID)
}

var _ AvailabilityCache = (*fakeCache)(nil)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }
