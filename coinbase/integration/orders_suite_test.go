package integration

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/quantor-labs/coinbasex/coinbase"
	"github.com/quantor-labs/coinbasex/pkg/decimalx"
)

// OrdersSuite places real sandbox orders. The limit price sits far below
// market so nothing ever fills; every order is cancelled on the way out.
type OrdersSuite struct {
	BaseSuite
}

func TestOrdersSuite(t *testing.T) {
	suite.Run(t, new(OrdersSuite))
}

func (s *OrdersSuite) TearDownTest() {
	if _, err := s.client.Orders().CancelAll(s.ctx, "", testProduct); err != nil {
		s.T().Logf("cleanup cancel failed: %v", err)
	}
	time.Sleep(time.Second)
}

func (s *OrdersSuite) TestCreateGetCancel() {
	clientOID := uuid.NewString()

	order, err := s.client.Orders().Create(s.ctx, coinbase.CreateOrderReq{
		Side:      coinbase.SideBuy,
		ProductID: testProduct,
		Price:     decimalx.MustFromString("1.00"),
		Size:      decimalx.MustFromString("0.001"),
		PostOnly:  true,
		ClientOID: clientOID,
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(order.ID)

	time.Sleep(time.Second) // let the order leave pending

	fetched, err := s.client.Orders().Get(s.ctx, order.ID)
	s.Require().NoError(err)
	s.Assert().Equal(order.ID, fetched.ID)
	s.Assert().Equal(coinbase.SideBuy, fetched.Side)

	byOID, err := s.client.Orders().Get(s.ctx, "client:"+clientOID)
	s.Require().NoError(err)
	s.Assert().Equal(order.ID, byOID.ID)

	canceled, err := s.client.Orders().Cancel(s.ctx, order.ID, "")
	s.Require().NoError(err)
	s.Assert().Equal(order.ID, canceled)
}

func (s *OrdersSuite) TestListOpenOrders() {
	order, err := s.client.Orders().Create(s.ctx, coinbase.CreateOrderReq{
		Side:      coinbase.SideBuy,
		ProductID: testProduct,
		Price:     decimalx.MustFromString("1.00"),
		Size:      decimalx.MustFromString("0.001"),
		PostOnly:  true,
	})
	s.Require().NoError(err)
	time.Sleep(time.Second)

	orders, err := s.client.Orders().List(s.ctx, coinbase.ListOrdersReq{ProductID: testProduct})
	s.Require().NoError(err)

	found := false
	for _, o := range orders {
		if o.ID == order.ID {
			found = true
			break
		}
	}
	s.Assert().True(found, "order %s should be listed as open", order.ID)
}

func (s *OrdersSuite) TestFills() {
	_, err := s.client.Orders().Fills(s.ctx, coinbase.ListFillsReq{ProductID: testProduct})
	s.Require().NoError(err)
}
