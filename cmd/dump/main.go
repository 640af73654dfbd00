package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stordefi/wstor-contract/rpc/wstor"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractHash := flag.String("contract", "", "Script hash of the deployed wstor contract (LE hex)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractHash == "":
		log.Fatal("missing wstor contract hash")
	}

	h, err := util.Uint160DecodeStringLE(*contractHash)
	if err != nil {
		log.Fatal(fmt.Errorf("decode contract hash: %w", err))
	}

	err = _dump(*neoRPCEndpoint, h)
	if err != nil {
		log.Fatal(err)
	}
}

func _dump(neoBlockchainRPCEndpoint string, contract util.Uint160) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	reader := wstor.NewReader(b.actor, contract)

	sym, err := reader.Symbol()
	if err != nil {
		return fmt.Errorf("get token symbol: %w", err)
	}

	supply, err := reader.TotalSupply()
	if err != nil {
		return fmt.Errorf("get total supply: %w", err)
	}

	maxSupply, err := reader.MaxSupply()
	if err != nil {
		return fmt.Errorf("get max supply: %w", err)
	}

	cfg, err := reader.GetConfig()
	if err != nil {
		return fmt.Errorf("get config: %w", err)
	}

	fmt.Printf("token: %s, supply: %s of %s\n", sym, supply, maxSupply)
	fmt.Printf("deposit disabled: %t, withdraw disabled: %t\n",
		cfg.DepositDisabled, cfg.WithdrawDisabled)
	fmt.Printf("deposit fee ratio: %s/10000, withdraw fee ratio: %s/10000\n",
		cfg.DepositFeeRatio, cfg.WithdrawFeeRatio)

	fmt.Printf("storage items at block %d:\n", b.currentBlock)

	return b.iterateContractStorage(contract, func(key, value []byte) error {
		fmt.Printf("%s: %s\n", hex.EncodeToString(key), hex.EncodeToString(value))
		return nil
	})
}
