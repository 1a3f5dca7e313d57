package balance

// WalletBalance 单个钱包的查询结果
type WalletBalance struct {
	// Address 钱包地址（base58）
	Address string
	// SOLBalance SOL 余额（lamports / 1e9）
	SOLBalance float64
	// TokenBalances 各配置代币的累计余额，保持配置文件中的顺序
	TokenBalances []TokenBalance
}

// TokenBalance 单个代币的累计余额
type TokenBalance struct {
	Ticker string
	Amount float64
}
