/*
Package result contains the shapes of ËTRID node responses. The client never
validates or rebuilds them, the node is the only source of truth for their
contents; they exist for callers that want typed access to the raw results.
*/
package result

import (
	"math/big"
)

type (
	// Account is returned by account_create, account_import and account_info.
	Account struct {
		Address     string   `json:"address"`
		Name        string   `json:"name,omitempty"`
		Balance     *big.Int `json:"balance,omitempty"`
		Nonce       uint64   `json:"nonce"`
		AccountType string   `json:"account_type,omitempty"`
		CreatedAt   uint64   `json:"created_at,omitempty"`
		IsActive    bool     `json:"is_active"`
	}

	// Transaction is returned by eth_getTransactionByHash.
	Transaction struct {
		Hash        string  `json:"hash"`
		From        string  `json:"from"`
		To          string  `json:"to"`
		Amount      uint64  `json:"amount"`
		Fee         uint64  `json:"fee"`
		Nonce       uint64  `json:"nonce"`
		BlockHash   string  `json:"block_hash,omitempty"`
		BlockHeight *uint64 `json:"block_height,omitempty"`
		Status      string  `json:"status,omitempty"`
	}

	// Block is returned by eth_getBlockByNumber.
	Block struct {
		Height         uint64   `json:"height"`
		Hash           string   `json:"hash"`
		ParentHash     string   `json:"parent_hash"`
		StateRoot      string   `json:"state_root,omitempty"`
		ExtrinsicsRoot string   `json:"extrinsics_root,omitempty"`
		Timestamp      uint64   `json:"timestamp"`
		Transactions   []string `json:"transactions"`
	}

	// StakeInfo is returned by stake_info.
	StakeInfo struct {
		Address       string   `json:"address"`
		Staked        *big.Int `json:"staked"`
		Unbonding     *big.Int `json:"unbonding,omitempty"`
		StakeLockedAt uint64   `json:"stake_locked_at,omitempty"`
		VotingPower   *big.Int `json:"voting_power,omitempty"`
		IsValidator   bool     `json:"is_validator"`
	}

	// Validator is an element of the list_validators result.
	Validator struct {
		Address string   `json:"address"`
		Stake   *big.Int `json:"stake"`
		Active  bool     `json:"active"`
	}

	// ConsensusDay is returned by consensus_current_day and
	// consensus_day_info.
	ConsensusDay struct {
		DayNumber       uint64 `json:"day_number"`
		Phase           string `json:"phase"`
		PhaseStartBlock uint64 `json:"phase_start_block"`
		EventStartBlock uint64 `json:"event_start_block"`
		Year            uint32 `json:"year"`
		ActiveProposals uint32 `json:"active_proposals,omitempty"`
	}

	// BlockchainInfo is returned by blockchain_info.
	BlockchainInfo struct {
		Chain           string `json:"chain"`
		BestBlockHeight uint64 `json:"best_block_height"`
		BestBlockHash   string `json:"best_block_hash"`
		FinalizedHeight uint64 `json:"finalized_height"`
	}

	// NetworkInfo is returned by network_info.
	NetworkInfo struct {
		Version   string `json:"version"`
		Peers     int    `json:"peers"`
		Listening bool   `json:"listening"`
	}
)
