// Package integration holds testify suites that run against a Coinbase
// Exchange sandbox. They are skipped unless the COINBASE_SANDBOX_* variables
// are set:
//
//	COINBASE_SANDBOX_KEY        api key
//	COINBASE_SANDBOX_SECRET     api secret
//	COINBASE_SANDBOX_PASSPHRASE api key passphrase
//	COINBASE_SANDBOX_ENDPOINT   rest endpoint url
//	COINBASE_SANDBOX_ID         an account id owned by the key
package integration

import (
	"context"
	"os"

	"github.com/stretchr/testify/suite"

	"github.com/quantor-labs/coinbasex/coinbase"
)

type BaseSuite struct {
	suite.Suite

	client    *coinbase.Client
	accountID string
	ctx       context.Context
	cancel    context.CancelFunc
}

func (s *BaseSuite) SetupSuite() {
	key := os.Getenv("COINBASE_SANDBOX_KEY")
	secret := os.Getenv("COINBASE_SANDBOX_SECRET")
	passphrase := os.Getenv("COINBASE_SANDBOX_PASSPHRASE")
	endpoint := os.Getenv("COINBASE_SANDBOX_ENDPOINT")
	if key == "" || secret == "" || passphrase == "" {
		s.T().Skip("COINBASE_SANDBOX_* credentials not set")
	}

	opts := []coinbase.Option{}
	if endpoint != "" {
		opts = append(opts, coinbase.WithBaseURL(endpoint))
	}
	s.client = coinbase.New(key, secret, passphrase, opts...)
	s.accountID = os.Getenv("COINBASE_SANDBOX_ID")
	s.ctx, s.cancel = context.WithCancel(context.Background())
}

func (s *BaseSuite) TearDownSuite() {
	if s.cancel != nil {
		s.cancel()
	}
}

// requireAccountID skips tests that need COINBASE_SANDBOX_ID when it is
// absent, instead of failing them.
func (s *BaseSuite) requireAccountID() string {
	if s.accountID == "" {
		s.T().Skip("COINBASE_SANDBOX_ID not set")
	}
	return s.accountID
}
