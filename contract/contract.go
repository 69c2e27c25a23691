package contract

import (
	"fmt"

	"github.com/vsyslabs/govsys/vsys"
)

// EncodeFuncData validates args against the function table of typ and
// encodes them as the serialized data stack passed to an execute-contract
// transaction. An unknown function, a wrong argument count or a wrong
// argument kind all fail before anything is encoded.
func EncodeFuncData(typ Type, funcIdx uint16, args ...vsys.DataEntry) ([]byte, error) {
	table, ok := funcTables[typ]
	if !ok {
		return nil, &vsys.ValidationError{Field: "contract type", Reason: fmt.Sprintf("unknown contract type %d", typ)}
	}
	want, ok := table[funcIdx]
	if !ok {
		return nil, &vsys.ValidationError{Field: "function index", Reason: fmt.Sprintf("%s contract has no function %d", typ, funcIdx)}
	}
	if len(args) != len(want) {
		return nil, &vsys.ValidationError{
			Field:  "function arguments",
			Reason: fmt.Sprintf("%s function %d takes %d arguments, got %d", typ, funcIdx, len(want), len(args)),
		}
	}
	for i, arg := range args {
		if arg.Kind() != want[i] {
			return nil, &vsys.ValidationError{
				Field:  "function arguments",
				Reason: fmt.Sprintf("%s function %d argument %d must be %s, got %s", typ, funcIdx, i, want[i], arg.Kind()),
			}
		}
	}
	return vsys.DataStack(args).Serialize()
}

// Instance is one registered contract of a known type, reachable through a
// chain.
type Instance struct {
	typ   Type
	id    vsys.ContractID
	chain *vsys.Chain
}

// NewInstance binds a contract id of the given type to a chain.
func NewInstance(chain *vsys.Chain, typ Type, ctrtID string) (*Instance, error) {
	if _, ok := funcTables[typ]; !ok {
		return nil, &vsys.ValidationError{Field: "contract type", Reason: fmt.Sprintf("unknown contract type %d", typ)}
	}
	id, err := vsys.ParseContractID(ctrtID)
	if err != nil {
		return nil, err
	}
	return &Instance{typ: typ, id: id, chain: chain}, nil
}

// Type returns the contract's type.
func (in *Instance) Type() Type {
	return in.typ
}

// ID returns the contract's id.
func (in *Instance) ID() vsys.ContractID {
	return in.id
}

// Chain returns the chain the contract lives on.
func (in *Instance) Chain() *vsys.Chain {
	return in.chain
}
