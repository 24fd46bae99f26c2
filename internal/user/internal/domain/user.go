package domain

type User struct {
	Id       int64
	SN       string
	Nickname string
	Avatar   string
	// Phone 规范化之后的本地手机号, 形如 0712345678
	Phone         string
	PhoneVerified bool
	Address       Address
}

// Address 收货地址档案, 订单创建时由前端带过来的快照与这里无关
type Address struct {
	Region     string
	District   string
	Street     string
	PostalCode string
}
