package rpcclient

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/etrid/etrcli/pkg/encoding/address"
	"github.com/etrid/etrcli/pkg/etrpc"
)

// Node methods. Account, staking and consensus calls use the native
// namespace, balance, block and transaction calls are Ethereum-compatible.
const (
	MethodAccountCreate      = "account_create"
	MethodAccountList        = "account_list"
	MethodAccountInfo        = "account_info"
	MethodAccountImport      = "account_import"
	MethodStakeTokens        = "stake_tokens"
	MethodUnstakeTokens      = "unstake_tokens"
	MethodStakeInfo          = "stake_info"
	MethodListValidators     = "list_validators"
	MethodGetBalance         = "eth_getBalance"
	MethodGetBlockByNumber   = "eth_getBlockByNumber"
	MethodGetTransaction     = "eth_getTransactionByHash"
	MethodBlockchainInfo     = "blockchain_info"
	MethodNetworkInfo        = "network_info"
	MethodSendTransaction    = "eth_sendTransaction"
	MethodSendRawTransaction = "eth_sendRawTransaction"
	MethodConsensusDay       = "consensus_current_day"
	MethodConsensusDayInfo   = "consensus_day_info"
	MethodSubmitVote         = "consensus_submit_vote"
)

// DefaultFee is the transaction fee used by the CLI when none is given.
const DefaultFee uint64 = 1000

type (
	accountCreateParams struct {
		Name string `json:"name,omitempty"`
	}
	accountImportParams struct {
		PrivateKey string `json:"private_key"`
		Name       string `json:"name,omitempty"`
	}
	addressParams struct {
		Address string `json:"address"`
	}
	// amountParams is used for both staking and unstaking, zero amount
	// is sent as is.
	amountParams struct {
		Address string `json:"address"`
		Amount  uint64 `json:"amount"`
	}
	blockHeightParams struct {
		Height uint64 `json:"block_height"`
	}
	blockHashParams struct {
		Hash string `json:"block_hash"`
	}
	txHashParams struct {
		Hash string `json:"tx_hash"`
	}
	sendParams struct {
		From   string `json:"from"`
		To     string `json:"to"`
		Amount uint64 `json:"amount"`
		Fee    uint64 `json:"fee"`
	}
	rawTxParams struct {
		RawTx string `json:"raw_tx"`
	}
	dayParams struct {
		Day uint64 `json:"day_number"`
	}
	voteParams struct {
		Validator  string `json:"validator"`
		ProposalID string `json:"proposal_id"`
		Vote       bool   `json:"vote"`
	}
)

func checkAddress(what, addr string) error {
	if err := address.Validate(addr); err != nil {
		return etrpc.NewInputError("invalid %s address %q: %s", what, addr, err)
	}
	return nil
}

// AccountCreate asks the node to create a new account with an optional name.
func (c *Client) AccountCreate(name string) (json.RawMessage, error) {
	return c.Call(MethodAccountCreate, accountCreateParams{Name: name})
}

// AccountList returns all accounts known to the node.
func (c *Client) AccountList() (json.RawMessage, error) {
	return c.Call(MethodAccountList, nil)
}

// AccountInfo returns information about the given account.
func (c *Client) AccountInfo(addr string) (json.RawMessage, error) {
	if err := checkAddress("account", addr); err != nil {
		return nil, err
	}
	return c.Call(MethodAccountInfo, addressParams{Address: addr})
}

// AccountImport imports an account into the node from its private key.
func (c *Client) AccountImport(privateKey, name string) (json.RawMessage, error) {
	return c.Call(MethodAccountImport, accountImportParams{PrivateKey: privateKey, Name: name})
}

// StakeTokens stakes the given (non-zero) amount from the given account.
func (c *Client) StakeTokens(addr string, amount uint64) (json.RawMessage, error) {
	if err := checkAddress("staker", addr); err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, etrpc.NewInputError("stake amount must be greater than zero")
	}
	return c.Call(MethodStakeTokens, amountParams{Address: addr, Amount: amount})
}

// UnstakeTokens unstakes the given amount, zero amount unstakes everything.
func (c *Client) UnstakeTokens(addr string, amount uint64) (json.RawMessage, error) {
	if err := checkAddress("staker", addr); err != nil {
		return nil, err
	}
	return c.Call(MethodUnstakeTokens, amountParams{Address: addr, Amount: amount})
}

// StakeInfo returns staking information of the given account.
func (c *Client) StakeInfo(addr string) (json.RawMessage, error) {
	if err := checkAddress("staker", addr); err != nil {
		return nil, err
	}
	return c.Call(MethodStakeInfo, addressParams{Address: addr})
}

// ListValidators returns the current validator set.
func (c *Client) ListValidators() (json.RawMessage, error) {
	return c.Call(MethodListValidators, nil)
}

// QueryBalance returns the balance of the given account.
func (c *Client) QueryBalance(addr string) (json.RawMessage, error) {
	if err := checkAddress("account", addr); err != nil {
		return nil, err
	}
	return c.Call(MethodGetBalance, addressParams{Address: addr})
}

// QueryBlock returns a block by its height (a string of decimal digits) or
// by its hash (anything else).
func (c *Client) QueryBlock(id string) (json.RawMessage, error) {
	params, err := blockParams(id)
	if err != nil {
		return nil, err
	}
	return c.Call(MethodGetBlockByNumber, params)
}

func blockParams(id string) (any, error) {
	if id == "" {
		return nil, etrpc.NewInputError("empty block height or hash")
	}
	isHeight := strings.IndexFunc(id, func(r rune) bool {
		return r < '0' || r > '9'
	}) < 0
	if !isHeight {
		return blockHashParams{Hash: id}, nil
	}
	h, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, etrpc.NewInputError("invalid block height %s: out of range", id)
	}
	return blockHeightParams{Height: h}, nil
}

// QueryTransaction returns a transaction by its hash.
func (c *Client) QueryTransaction(hash string) (json.RawMessage, error) {
	return c.Call(MethodGetTransaction, txHashParams{Hash: hash})
}

// GetBlockchainInfo returns general chain information.
func (c *Client) GetBlockchainInfo() (json.RawMessage, error) {
	return c.Call(MethodBlockchainInfo, nil)
}

// GetNetworkInfo returns node network information.
func (c *Client) GetNetworkInfo() (json.RawMessage, error) {
	return c.Call(MethodNetworkInfo, nil)
}

// SendTransaction submits a transfer of a non-zero amount paying the given fee.
func (c *Client) SendTransaction(from, to string, amount, fee uint64) (json.RawMessage, error) {
	if err := checkAddress("sender", from); err != nil {
		return nil, err
	}
	if err := checkAddress("recipient", to); err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, etrpc.NewInputError("transfer amount must be greater than zero")
	}
	return c.Call(MethodSendTransaction, sendParams{From: from, To: to, Amount: amount, Fee: fee})
}

// SendRawTransaction submits an already signed and encoded transaction.
func (c *Client) SendRawTransaction(rawTx string) (json.RawMessage, error) {
	if rawTx == "" {
		return nil, etrpc.NewInputError("empty raw transaction")
	}
	return c.Call(MethodSendRawTransaction, rawTxParams{RawTx: rawTx})
}

// ConsensusDay returns the current Consensus Day.
func (c *Client) ConsensusDay() (json.RawMessage, error) {
	return c.Call(MethodConsensusDay, nil)
}

// ConsensusDayInfo returns information about the given Consensus Day.
func (c *Client) ConsensusDayInfo(day uint64) (json.RawMessage, error) {
	return c.Call(MethodConsensusDayInfo, dayParams{Day: day})
}

// SubmitVote submits the validator's vote for the given proposal.
func (c *Client) SubmitVote(validator, proposalID string, vote bool) (json.RawMessage, error) {
	if err := checkAddress("validator", validator); err != nil {
		return nil, err
	}
	return c.Call(MethodSubmitVote, voteParams{Validator: validator, ProposalID: proposalID, Vote: vote})
}
