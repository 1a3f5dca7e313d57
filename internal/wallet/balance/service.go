package balance

import (
	"context"
	"encoding/json"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/sol-balance/internal/config"
	"github/chapool/sol-balance/internal/wallet/chain"
)

// lamportsPerSOL lamports 与 SOL 的换算基数
const lamportsPerSOL = 1_000_000_000

// Service 余额查询服务接口
type Service interface {
	// GetWalletBalances 查询所有钱包的 SOL 余额和配置代币余额
	GetWalletBalances(ctx context.Context, wallets []string, tokens []config.TokenDescriptor) ([]*WalletBalance, error)
}

// service 实现 Service 接口
type service struct {
	client chain.Client
}

// NewService 创建余额查询服务
//
//nolint:ireturn // 返回接口类型是预期的设计
func NewService(client chain.Client) Service {
	return &service{
		client: client,
	}
}

// GetWalletBalances 按配置顺序依次查询每个钱包，任一钱包失败则整体失败
func (s *service) GetWalletBalances(ctx context.Context, wallets []string, tokens []config.TokenDescriptor) ([]*WalletBalance, error) {
	results := make([]*WalletBalance, 0, len(wallets))

	for _, walletStr := range wallets {
		walletPubkey, err := solana.PublicKeyFromBase58(walletStr)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode wallet address: %s", walletStr)
		}

		lamports, err := s.client.GetBalance(ctx, walletPubkey)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get SOL balance for wallet: %s", walletStr)
		}

		tokenBalances, err := s.getTokenBalances(ctx, walletPubkey, tokens)
		if err != nil {
			return nil, err
		}

		results = append(results, &WalletBalance{
			Address:       walletStr,
			SOLBalance:    float64(lamports) / lamportsPerSOL,
			TokenBalances: tokenBalances,
		})
	}

	return results, nil
}

// getTokenBalances 查询单个钱包所有配置代币的累计余额
// 同一 mint 的多个 token account 金额累加；没有匹配账户的代币余额为 0
func (s *service) getTokenBalances(ctx context.Context, owner solana.PublicKey, tokens []config.TokenDescriptor) ([]TokenBalance, error) {
	balances := make([]TokenBalance, 0, len(tokens))

	for _, token := range tokens {
		mintPubkey, err := solana.PublicKeyFromBase58(token.Address)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode mint address: %s", token.Address)
		}

		accounts, err := s.client.GetTokenAccountsByMint(ctx, owner, mintPubkey)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get token accounts for mint: %s", token.Address)
		}

		var total float64
		for _, account := range accounts {
			amount, ok := parseUIAmount(account)
			if !ok {
				// 数据不是 jsonParsed 编码或结构不符：跳过但记录告警，避免悄悄漏掉真实余额
				log.Warn().
					Str("owner", owner.String()).
					Str("mint", token.Address).
					Str("account", account.Pubkey.String()).
					Msg("Skipping token account with unparseable data")
				continue
			}
			total += amount
		}

		balances = append(balances, TokenBalance{
			Ticker: token.Ticker,
			Amount: total,
		})
	}

	return balances, nil
}

// parsedAccountData jsonParsed 编码下 token account 数据的预期结构
type parsedAccountData struct {
	Parsed struct {
		Info struct {
			TokenAmount struct {
				UIAmount *float64 `json:"uiAmount"`
			} `json:"tokenAmount"`
		} `json:"info"`
	} `json:"parsed"`
}

// parseUIAmount 从 jsonParsed 数据中提取 uiAmount
// 第二个返回值为 false 表示数据无法解析；uiAmount 为 null 时返回 (0, true)
func parseUIAmount(account chain.TokenAccountData) (float64, bool) {
	if account.Raw == nil {
		return 0, false
	}

	var data parsedAccountData
	if err := json.Unmarshal(account.Raw, &data); err != nil {
		return 0, false
	}

	if data.Parsed.Info.TokenAmount.UIAmount == nil {
		return 0, true
	}

	return *data.Parsed.Info.TokenAmount.UIAmount, true
}
