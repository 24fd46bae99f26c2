// Copyright 2025 mkulima
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package order

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/mkulima/duka/internal/order/internal/event"
	"github.com/mkulima/duka/internal/order/internal/repository/dao"
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

func initOrderEventProducer(q mq.MQ) event.OrderEventProducer {
	producer, err := event.NewOrderEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
