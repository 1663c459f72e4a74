package common

import (
	"hash/fnv"

	"github.com/fundwit/go-commons/types"
	"github.com/sony/sonyflake"
)

// NewIdWorker derives the machine id from the service instance name so that
// hosts without a private IPv4 address still get a working generator.
func NewIdWorker() *sonyflake.Sonyflake {
	return sonyflake.NewSonyflake(sonyflake.Settings{MachineID: func() (uint16, error) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(GetServiceInstance()))
		return uint16(h.Sum32()), nil
	}})
}

func NextId(idWorker *sonyflake.Sonyflake) types.ID {
	id, err := idWorker.NextID()
	if err != nil {
		panic(err)
	}
	return types.ID(id)
}
