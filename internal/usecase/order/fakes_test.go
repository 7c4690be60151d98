package order

import (
	"errors"

	"github.com/mercadim/marketplace-service/internal/domain"
)

// fakeStore is shared in-memory state behind the fake repositories.
type fakeStore struct {
	orders   map[string]*domain.Order
	products map[string]*domain.Product
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:   make(map[string]*domain.Order),
		products: make(map[string]*domain.Product),
	}
}

// fakeTx buffers writes until Commit, like the real unit of work.
type fakeTx struct {
	store      *fakeStore
	decrements map[string]int
	statuses   map[string]domain.OrderStatus
	committed  bool
	rolledBack bool

	lockStatusErr error
	lockErr       error
	decErr        error
	updateErr     error
	commitErr     error
}

func (tx *fakeTx) LockOrderStatus(orderID string) (domain.OrderStatus, error) {
	if tx.lockStatusErr != nil {
		return "", tx.lockStatusErr
	}
	if status, ok := tx.statuses[orderID]; ok {
		return status, nil
	}
	o, ok := tx.store.orders[orderID]
	if !ok {
		return "", errors.New("order not found")
	}
	return o.Status, nil
}

func (tx *fakeTx) LockProduct(productID string) (*domain.Product, error) {
	if tx.lockErr != nil {
		return nil, tx.lockErr
	}
	p, ok := tx.store.products[productID]
	if !ok {
		return nil, errors.New("product not found")
	}
	copy := *p
	copy.StockQuantity -= tx.decrements[productID]
	return &copy, nil
}

func (tx *fakeTx) DecrementStock(productID string, quantity int) error {
	if tx.decErr != nil {
		return tx.decErr
	}
	tx.decrements[productID] += quantity
	return nil
}

func (tx *fakeTx) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	if tx.updateErr != nil {
		return tx.updateErr
	}
	tx.statuses[orderID] = newStatus
	return nil
}

func (tx *fakeTx) Commit() error {
	if tx.commitErr != nil {
		return tx.commitErr
	}
	for id, qty := range tx.decrements {
		tx.store.products[id].StockQuantity -= qty
	}
	for id, status := range tx.statuses {
		tx.store.orders[id].Status = status
	}
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback() error {
	tx.rolledBack = true
	return nil
}

type fakeOrderRepo struct {
	store  *fakeStore
	lastTx *fakeTx

	beginErr error
	txSetup  func(*fakeTx)
}

func (r *fakeOrderRepo) CreateOrder(order *domain.Order) (string, error) {
	id := "order-" + order.Code
	order.ID = id
	r.store.orders[id] = order
	return id, nil
}

func (r *fakeOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	o, ok := r.store.orders[orderID]
	if !ok {
		return nil, errors.New("order not found")
	}
	copy := *o
	return &copy, nil
}

func (r *fakeOrderRepo) GetOrdersByUserID(userID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.store.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetOrdersByStoreID(storeID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.store.orders {
		if o.StoreID == storeID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	o, ok := r.store.orders[orderID]
	if !ok {
		return errors.New("order not found")
	}
	o.Status = newStatus
	return nil
}

func (r *fakeOrderRepo) BeginTx() (domain.OrderTx, error) {
	if r.beginErr != nil {
		return nil, r.beginErr
	}
	tx := &fakeTx{
		store:      r.store,
		decrements: make(map[string]int),
		statuses:   make(map[string]domain.OrderStatus),
	}
	if r.txSetup != nil {
		r.txSetup(tx)
	}
	r.lastTx = tx
	return tx, nil
}

type fakeCompanyRepo struct {
	companies map[string]*domain.Company
}

func (r *fakeCompanyRepo) CreateCompany(c *domain.Company) (string, error) { return c.ID, nil }
func (r *fakeCompanyRepo) UpdateCompany(c *domain.Company) error           { return nil }
func (r *fakeCompanyRepo) DeleteCompany(id string) error                   { return nil }

func (r *fakeCompanyRepo) GetCompanyByID(id string) (*domain.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, errors.New("company not found")
	}
	return c, nil
}

func (r *fakeCompanyRepo) GetCompanies() ([]*domain.Company, error)             { return nil, nil }
func (r *fakeCompanyRepo) GetCompaniesWithProducts() ([]*domain.Company, error) { return nil, nil }

type fakeAddressRepo struct {
	addresses map[string]*domain.Address
}

func (r *fakeAddressRepo) GetUserAddress(userID, addressID string) (*domain.Address, error) {
	a, ok := r.addresses[addressID]
	if !ok || a.UserID != userID {
		return nil, nil
	}
	return a, nil
}

type fakeCartRepo struct {
	cart        *domain.Cart
	deletedCart string
}

func (r *fakeCartRepo) GetCartByOwner(userID, companyID string) (*domain.Cart, error) {
	if r.cart == nil || r.cart.UserID != userID {
		return nil, nil
	}
	return r.cart, nil
}

func (r *fakeCartRepo) CreateCart(cart *domain.Cart) (string, error) { return cart.ID, nil }

func (r *fakeCartRepo) DeleteCart(cartID string) error {
	r.deletedCart = cartID
	return nil
}

func (r *fakeCartRepo) FindItem(cartID, productID string, variationIDs []string) (*domain.CartItem, error) {
	return nil, nil
}

func (r *fakeCartRepo) AddItem(item *domain.CartItem) (string, error) { return item.ID, nil }

func (r *fakeCartRepo) UpdateItemQuantity(itemID string, quantity int) error { return nil }

func (r *fakeCartRepo) RemoveItem(itemID string) error { return nil }

func (r *fakeCartRepo) GetItemByID(itemID string) (*domain.CartItem, error) {
	return nil, errors.New("not found")
}

func (r *fakeCartRepo) CountItems(cartID string) (int64, error) { return 0, nil }

// fakePublisherPort captures published messages for assertions.
type fakePublisherPort struct {
	published chan domain.Message
}

func (p *fakePublisherPort) Publish(topic string, msgs ...domain.Message) error {
	for _, m := range msgs {
		p.published <- m
	}
	return nil
}
