package registry

import "addressregistry/internal/domain/address"

// Ethereum mainnet contracts. DAI and MATIC carry the same value, see Registry.Duplicates.
var mainnet = []address.Address{
	// Tokens
	{Symbol: "USDC", Value: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", Kind: address.KindToken},
	{Symbol: "WETH", Value: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", Kind: address.KindToken},
	{Symbol: "DAI", Value: "0x6B175474E89094C44Da98b954EedeAC495271d0F", Kind: address.KindToken},
	{Symbol: "MATIC", Value: "0x6B175474E89094C44Da98b954EedeAC495271d0F", Kind: address.KindToken},
	{Symbol: "LINK", Value: "0x514910771AF9Ca656af840dff83E8264EcF986CA", Kind: address.KindToken},
	{Symbol: "BAT", Value: "0x0D8775F648430679A709E98d2b0Cb6250d2887EF", Kind: address.KindToken},
	{Symbol: "SUSHI", Value: "0x6B3595068778DD592e39A122f4f5a5cF09C90fE2", Kind: address.KindToken},
	{Symbol: "CRV", Value: "0xD533a949740bb3306d119CC777fa900bA034cd52", Kind: address.KindToken},
	{Symbol: "UNI", Value: "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984", Kind: address.KindToken},
	{Symbol: "ONEINCH", Value: "0x111111111117dC0aa78b770fA6A738034120C302", Kind: address.KindToken},

	// Routers
	{Symbol: "UNISWAP_V2_ROUTER", Value: "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D", Kind: address.KindRouter},
	{Symbol: "SUSHISWAP_ROUTER", Value: "0xd9e1cE17f2641f24aE83637ab66a2cca9C378B9F", Kind: address.KindRouter},
	{Symbol: "PANCAKESWAP_ROUTER", Value: "0xEfF92A263d31888d860bD50809A8D171709b7b1c", Kind: address.KindRouter},

	// Factories
	{Symbol: "UNISWAP_V2_FACTORY", Value: "0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f", Kind: address.KindFactory},
	{Symbol: "SUSHISWAP_FACTORY", Value: "0xC0AEe478e3658e2610c5F7A4A2E1777cE9e4f2Ac", Kind: address.KindFactory},
	{Symbol: "PANCAKESWAP_FACTORY", Value: "0x1097053Fd2ea711dad45caCcc45EfF7548fCB362", Kind: address.KindFactory},

	// Uniswap v3 periphery
	{Symbol: "UNISWAP_V3_QUOTER", Value: "0xb27308f9F90D607463bb33eA1BeBb41C27CE5AB6", Kind: address.KindQuoter},
	{Symbol: "UNISWAP_V3_SWAP_ROUTER", Value: "0xE592427A0AEce92De3Edee1F18E0157C05861564", Kind: address.KindRouter},
	{Symbol: "UNISWAP_V3_QUOTER_V2", Value: "0x61fFE014bA17989E743c5F6cB21bF9697530B21e", Kind: address.KindQuoter},
}
