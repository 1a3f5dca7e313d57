package chain

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// rpcClient 封装 Solana RPC 客户端（单节点，无故障转移）
type rpcClient struct {
	url    string
	client *rpc.Client
}

// NewRPCClient 创建新的 RPC 客户端
//
//nolint:ireturn
func NewRPCClient(url string) (Client, error) {
	if url == "" {
		return nil, errors.New("RPC URL is required")
	}

	return &rpcClient{
		url:    url,
		client: rpc.New(url),
	}, nil
}

// Close 关闭底层连接
func (c *rpcClient) Close() {
	if err := c.client.Close(); err != nil {
		log.Warn().
			Str("url", c.url).
			Err(err).
			Msg("Failed to close RPC client")
	}
}

// GetBalance 查询账户的 lamports 余额（finalized）
func (c *rpcClient) GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	out, err := c.client.GetBalance(ctx, account, rpc.CommitmentFinalized)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get balance")
	}

	return out.Value, nil
}

// GetTokenAccountsByMint 按 owner + mint 查询 token account，请求 jsonParsed 编码
func (c *rpcClient) GetTokenAccountsByMint(ctx context.Context, owner, mint solana.PublicKey) ([]TokenAccountData, error) {
	out, err := c.client.GetTokenAccountsByOwner(
		ctx,
		owner,
		&rpc.GetTokenAccountsConfig{
			Mint: &mint,
		},
		&rpc.GetTokenAccountsOpts{
			Commitment: rpc.CommitmentFinalized,
			Encoding:   solana.EncodingJSONParsed,
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get token accounts by owner")
	}

	accounts := make([]TokenAccountData, 0, len(out.Value))
	for _, acc := range out.Value {
		data := TokenAccountData{Pubkey: acc.Pubkey}
		if acc.Account.Data != nil {
			// GetRawJSON 对二进制编码的数据返回 nil
			data.Raw = acc.Account.Data.GetRawJSON()
		}
		accounts = append(accounts, data)
	}

	return accounts, nil
}
