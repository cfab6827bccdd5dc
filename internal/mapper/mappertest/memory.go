// Package mappertest provides in-memory mappers for service and handler
// tests. They honour the same contracts as the SQL mappers: lookups return
// (nil, nil) for missing rows, writes return affected row counts and
// uniqueness violations surface as gorm.ErrDuplicatedKey.
package mappertest

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"secondhand-market/internal/dto"
)

// Store is a shared in-memory database backing every mapper in this package.
type Store struct {
	mu         sync.Mutex
	users      map[string]dto.UserDTO
	products   map[int64]dto.ProductDTO
	categories map[int]dto.CategoryDTO
	files      map[int64]dto.FileDTO
	nextID     int64

	// Err, when set, is returned by every call.
	Err error
}

func NewStore() *Store {
	return &Store{
		users:      map[string]dto.UserDTO{},
		products:   map[int64]dto.ProductDTO{},
		categories: map[int]dto.CategoryDTO{},
		files:      map[int64]dto.FileDTO{},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// Products returns a copy of every stored product ordered by id.
func (s *Store) Products() []dto.ProductDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]dto.ProductDTO, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Users returns a copy of every stored user ordered by id.
func (s *Store) Users() []dto.UserDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]dto.UserDTO, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddCategory seeds a category and returns its id.
func (s *Store) AddCategory(name string) int {
	c, _ := (*CategoryMapper)(s).Register(context.Background(), name)
	return c.ID
}

// AddUser seeds a user row as given; Password must already be hashed.
func (s *Store) AddUser(u dto.UserDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

type UserMapper Store

func (m *UserMapper) GetUserProfile(_ context.Context, id string) (*dto.UserDTO, error) {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *UserMapper) InsertUserProfile(_ context.Context, user *dto.UserDTO) (int64, error) {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	if _, ok := s.users[user.ID]; ok {
		return 0, gorm.ErrDuplicatedKey
	}
	s.users[user.ID] = *user
	return 1, nil
}

func (m *UserMapper) UpdateUserProfile(_ context.Context, user *dto.UserDTO) (int64, error) {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	cur, ok := s.users[user.ID]
	if !ok {
		return 0, nil
	}
	cur.Password = user.Password
	cur.Name = user.Name
	cur.Phone = user.Phone
	cur.Address = user.Address
	s.users[user.ID] = cur
	return 1, nil
}

func (m *UserMapper) DeleteUserProfile(_ context.Context, id string) (int64, error) {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	if _, ok := s.users[id]; !ok {
		return 0, nil
	}
	delete(s.users, id)
	for pid, p := range s.products {
		if p.AccountID == id {
			delete(s.products, pid)
		}
	}
	return 1, nil
}

type ProductMapper Store

func (m *ProductMapper) Register(_ context.Context, p *dto.ProductDTO) (int64, error) {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	row := *p
	row.ID = s.id()
	s.products[row.ID] = row
	return 1, nil
}

func (m *ProductMapper) GetProduct(_ context.Context, id int64) (*dto.ProductDTO, error) {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *ProductMapper) SelectMyProducts(_ context.Context, accountID string) ([]dto.ProductDTO, error) {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []dto.ProductDTO{}
	for _, p := range s.products {
		if p.AccountID == accountID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *ProductMapper) UpdateProducts(_ context.Context, accountID string, productID int64, u dto.ProductUpdate, updateTime time.Time) (int64, error) {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	cur, ok := s.products[productID]
	if !ok || cur.AccountID != accountID {
		return 0, nil
	}
	u.ApplyTo(&cur)
	cur.UpdateTime = updateTime
	s.products[productID] = cur
	return 1, nil
}

func (m *ProductMapper) DeleteProduct(_ context.Context, accountID string, productID int64) (int64, error) {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	cur, ok := s.products[productID]
	if !ok || cur.AccountID != accountID {
		return 0, nil
	}
	delete(s.products, productID)
	return 1, nil
}

func (m *ProductMapper) IncreaseDibCount(_ context.Context, productID int64) (int64, error) {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	cur, ok := s.products[productID]
	if !ok {
		return 0, nil
	}
	cur.DibCount++
	s.products[productID] = cur
	return 1, nil
}

func (m *ProductMapper) SelectProducts(_ context.Context, search dto.CategoryDTO) ([]dto.ProductDTO, error) {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := []dto.ProductDTO{}
	for _, p := range s.products {
		if search.ID == 0 || p.CategoryID == search.ID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(search.SortStatus, out[i], out[j]) })

	if search.PagingStartOffset >= len(out) {
		return []dto.ProductDTO{}, nil
	}
	out = out[search.PagingStartOffset:]
	if search.SearchCount < len(out) {
		out = out[:search.SearchCount]
	}
	return out, nil
}

func less(sortStatus dto.SortStatus, a, b dto.ProductDTO) bool {
	switch sortStatus {
	case dto.SortCategories:
		if a.CategoryID != b.CategoryID {
			return a.CategoryID < b.CategoryID
		}
		return a.ID < b.ID
	case dto.SortOldest:
		return before(a.UpdateTime, b.UpdateTime, a.ID < b.ID)
	case dto.SortHighPrice:
		if a.Price != b.Price {
			return a.Price > b.Price
		}
		return a.ID > b.ID
	case dto.SortLowPrice:
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		return a.ID < b.ID
	case dto.SortGrade:
		if a.DibCount != b.DibCount {
			return a.DibCount > b.DibCount
		}
		return a.ID > b.ID
	default:
		return before(b.UpdateTime, a.UpdateTime, a.ID > b.ID)
	}
}

func before(a, b time.Time, tie bool) bool {
	if a.Equal(b) {
		return tie
	}
	return a.Before(b)
}

type CategoryMapper Store

func (m *CategoryMapper) SelectCategories(_ context.Context) ([]dto.CategoryDTO, error) {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []dto.CategoryDTO{}
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *CategoryMapper) GetCategory(_ context.Context, id int) (*dto.CategoryDTO, error) {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	c, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *CategoryMapper) Register(_ context.Context, name string) (*dto.CategoryDTO, error) {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.categories {
		if c.Name == name {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	c := dto.CategoryDTO{ID: int(s.id()), Name: name}
	s.categories[c.ID] = c
	return &c, nil
}

type FileMapper Store

func (m *FileMapper) Register(_ context.Context, f *dto.FileDTO) error {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	f.ID = s.id()
	f.CreatedAt = time.Now()
	s.files[f.ID] = *f
	return nil
}

func (m *FileMapper) GetFile(_ context.Context, id int64) (*dto.FileDTO, error) {
	s := (*Store)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	f, ok := s.files[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (s *Store) UserMapper() *UserMapper {
	return (*UserMapper)(s)
}

func (s *Store) ProductMapper() *ProductMapper {
	return (*ProductMapper)(s)
}

func (s *Store) CategoryMapper() *CategoryMapper {
	return (*CategoryMapper)(s)
}

func (s *Store) FileMapper() *FileMapper {
	return (*FileMapper)(s)
}
