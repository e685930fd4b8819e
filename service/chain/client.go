package chain

import (
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/base/log"
	"github.com/bazaario/goapi/domain"
)

type ClientCfg struct {
	RpcUrl string
}

// HeightGetter reads the current chain height. The marketplace uses it as the
// logical clock for auction deadlines.
type HeightGetter interface {
	Height(c bCtx.Ctx) (domain.BlockHeight, error)
}

type clientImpl struct {
	client *ethclient.Client
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (HeightGetter, error) {
	if cfg.RpcUrl == "" {
		return nil, xerrors.Errorf("empty rpc url")
	}
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}
	return &clientImpl{client: client}, nil
}

func (c *clientImpl) Height(ctx bCtx.Ctx) (domain.BlockHeight, error) {
	n, err := c.client.BlockNumber(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.BlockNumber failed")
		return 0, err
	}
	return domain.BlockHeight(n), nil
}
