package chain

import (
	"context"
	"encoding/json"

	"github.com/gagliardetto/solana-go"
)

// Client Solana RPC 客户端接口
type Client interface {
	// GetBalance 查询账户的 lamports 余额
	GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error)

	// GetTokenAccountsByMint 查询 owner 名下指定 mint 的所有 token account
	GetTokenAccountsByMint(ctx context.Context, owner, mint solana.PublicKey) ([]TokenAccountData, error)

	// Close 关闭底层连接
	Close()
}

// TokenAccountData 单个 token account 的返回数据
// Raw 是节点返回的 jsonParsed 数据；节点返回二进制编码时为 nil
type TokenAccountData struct {
	Pubkey solana.PublicKey
	Raw    json.RawMessage
}
