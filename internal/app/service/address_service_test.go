package service

import (
	"testing"

	"github.com/storelink/storelink-backend/internal/app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(u uint) *uint {
	return &u
}

func newAddressService(fixture marketFixture) AddressService {
	return NewAddressService(
		repository.NewShippingAddressRepository(fixture.DB),
		repository.NewCustomerRepository(fixture.DB),
		repository.NewOrderRepository(fixture.DB),
	)
}

func TestAddressService_CreateAddress(t *testing.T) {
	fixture := seedMarket(t)
	addressService := newAddressService(fixture)

	address, err := addressService.CreateAddress(CreateAddressInput{
		CustomerID: uintPtr(fixture.Customer.ID),
		Address:    "42 Delivery Lane",
		City:       "Accra",
		Zipcode:    "00233",
	})
	require.NoError(t, err)
	assert.NotZero(t, address.ID)

	addresses, err := addressService.ListCustomerAddresses(fixture.Customer.ID)
	require.NoError(t, err)
	assert.Len(t, addresses, 1)
}

func TestAddressService_CreateAddress_Unlinked(t *testing.T) {
	fixture := seedMarket(t)
	addressService := newAddressService(fixture)

	// Neither customer nor order is required
	address, err := addressService.CreateAddress(CreateAddressInput{
		Address: "1 Anonymous Way",
		City:    "Tamale",
		Zipcode: "00233",
	})
	require.NoError(t, err)
	assert.Nil(t, address.CustomerID)
	assert.Nil(t, address.OrderID)
}

func TestAddressService_CreateAddress_UnknownCustomer(t *testing.T) {
	fixture := seedMarket(t)
	addressService := newAddressService(fixture)

	_, err := addressService.CreateAddress(CreateAddressInput{
		CustomerID: uintPtr(9999),
		Address:    "nowhere",
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestAddressService_DeleteAddress(t *testing.T) {
	fixture := seedMarket(t)
	addressService := newAddressService(fixture)

	address, err := addressService.CreateAddress(CreateAddressInput{
		CustomerID: uintPtr(fixture.Customer.ID),
		Address:    "42 Delivery Lane",
		City:       "Accra",
		Zipcode:    "00233",
	})
	require.NoError(t, err)

	require.NoError(t, addressService.DeleteAddress(address.ID))

	_, err = addressService.GetAddress(address.ID)
	assert.ErrorIs(t, err, ErrAddressNotFound)
}
