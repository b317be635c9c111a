package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mvaldezl/ferreteria-api/internal/domain/entity"
	"github.com/mvaldezl/ferreteria-api/internal/domain/repository"
	"github.com/mvaldezl/ferreteria-api/pkg/pagination"
)

// In-memory repositories backing the service tests. Stock and counter
// side effects mirror what the real transactional implementations do.

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) add(p entity.Product) *entity.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.products[p.ID] = &p
	return &p
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) add(c entity.Customer) *entity.Customer {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.customers[c.ID] = &c
	return &c
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	clone := *customer
	f.customers[customer.ID] = &clone
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.Email == email {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	clone := *customer
	f.customers[customer.ID] = &clone
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type fakeSupplierRepo struct {
	suppliers map[uuid.UUID]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[uuid.UUID]*entity.Supplier)}
}

func (f *fakeSupplierRepo) add(s entity.Supplier) *entity.Supplier {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.suppliers[s.ID] = &s
	return &s
}

func (f *fakeSupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	clone := *supplier
	f.suppliers[supplier.ID] = &clone
	return nil
}

func (f *fakeSupplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	s, ok := f.suppliers[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (f *fakeSupplierRepo) GetByEmail(ctx context.Context, email string) (*entity.Supplier, error) {
	for _, s := range f.suppliers {
		if s.Email == email {
			clone := *s
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeSupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	clone := *supplier
	f.suppliers[supplier.ID] = &clone
	return nil
}

func (f *fakeSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.suppliers, id)
	return nil
}

func (f *fakeSupplierRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	var out []entity.Supplier
	for _, s := range f.suppliers {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

type fakeSaleRepo struct {
	sales     map[uuid.UUID]*entity.Sale
	products  *fakeProductRepo
	customers *fakeCustomerRepo
}

func newFakeSaleRepo(products *fakeProductRepo, customers *fakeCustomerRepo) *fakeSaleRepo {
	return &fakeSaleRepo{
		sales:     make(map[uuid.UUID]*entity.Sale),
		products:  products,
		customers: customers,
	}
}

func (f *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	var failed []uuid.UUID
	for _, line := range sale.Lines {
		p, ok := f.products.products[line.ProductID]
		if !ok || p.Stock < line.Quantity {
			failed = append(failed, line.ProductID)
		}
	}
	if len(failed) > 0 {
		return &repository.InsufficientStockError{ProductIDs: failed}
	}

	for _, line := range sale.Lines {
		f.products.products[line.ProductID].Stock -= line.Quantity
	}
	if c, ok := f.customers.customers[sale.CustomerID]; ok {
		c.SalesCount++
	}

	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	clone := *sale
	f.sales[sale.ID] = &clone
	return nil
}

func (f *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (f *fakeSaleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	sale, ok := f.sales[id]
	if !ok {
		return nil
	}
	for _, line := range sale.Lines {
		if p, exists := f.products.products[line.ProductID]; exists {
			p.Stock += line.Quantity
		}
	}
	if c, exists := f.customers.customers[sale.CustomerID]; exists && c.SalesCount > 0 {
		c.SalesCount--
	}
	delete(f.sales, id)
	return nil
}

func (f *fakeSaleRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Sale, int64, error) {
	sales, err := f.ListAll(ctx)
	return sales, int64(len(sales)), err
}

func (f *fakeSaleRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, s := range f.sales {
		if s.CustomerID == customerID {
			out = append(out, *s)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeSaleRepo) ListAll(ctx context.Context) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range f.sales {
		out = append(out, *s)
	}
	return out, nil
}

type fakePurchaseRepo struct {
	purchases map[uuid.UUID]*entity.Purchase
	products  *fakeProductRepo
	suppliers *fakeSupplierRepo
}

func newFakePurchaseRepo(products *fakeProductRepo, suppliers *fakeSupplierRepo) *fakePurchaseRepo {
	return &fakePurchaseRepo{
		purchases: make(map[uuid.UUID]*entity.Purchase),
		products:  products,
		suppliers: suppliers,
	}
}

func (f *fakePurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	for _, line := range purchase.Lines {
		if p, ok := f.products.products[line.ProductID]; ok {
			p.Stock += line.Quantity
		}
	}
	if s, ok := f.suppliers.suppliers[purchase.SupplierID]; ok {
		s.PurchasesCount++
	}

	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	clone := *purchase
	f.purchases[purchase.ID] = &clone
	return nil
}

func (f *fakePurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	p, ok := f.purchases[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakePurchaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	purchase, ok := f.purchases[id]
	if !ok {
		return nil
	}

	var failed []uuid.UUID
	for _, line := range purchase.Lines {
		p, exists := f.products.products[line.ProductID]
		if !exists || p.Stock < line.Quantity {
			failed = append(failed, line.ProductID)
		}
	}
	if len(failed) > 0 {
		return &repository.InsufficientStockError{ProductIDs: failed}
	}

	for _, line := range purchase.Lines {
		f.products.products[line.ProductID].Stock -= line.Quantity
	}
	if s, exists := f.suppliers.suppliers[purchase.SupplierID]; exists && s.PurchasesCount > 0 {
		s.PurchasesCount--
	}
	delete(f.purchases, id)
	return nil
}

func (f *fakePurchaseRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Purchase, int64, error) {
	purchases, err := f.ListAll(ctx)
	return purchases, int64(len(purchases)), err
}

func (f *fakePurchaseRepo) ListBySupplier(ctx context.Context, supplierID uuid.UUID, params *pagination.PaginationParams) ([]entity.Purchase, int64, error) {
	var out []entity.Purchase
	for _, p := range f.purchases {
		if p.SupplierID == supplierID {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakePurchaseRepo) ListAll(ctx context.Context) ([]entity.Purchase, error) {
	var out []entity.Purchase
	for _, p := range f.purchases {
		out = append(out, *p)
	}
	return out, nil
}
