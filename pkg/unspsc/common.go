package unspsc

// Frequently used codes, for suggestions and defaults.
const (
	FreshVegetables     Code = "50201506"
	FreshFruits         Code = "50201507"
	PreparedMeals       Code = "50201710"
	Beverages           Code = "50203506"
	PoweredWheelchair   Code = "72101620"
	ManualWheelchair    Code = "72101503"
	CanesWalkers        Code = "72101501"
	FirstAidKits        Code = "72100106"
	Toiletries          Code = "72200101"
	EmotionalSupport    Code = "93150101"
	SkillSharing        Code = "93150301"
	RidesTransportation Code = "93150205"
	Laptops             Code = "43100102"
	Smartphones         Code = "43102001"
	Books               Code = "55100101"
	SchoolSupplies      Code = "60100101"
)

// CommonCodes lists the frequently used codes in suggestion order.
// Every entry is valid in a response.
var CommonCodes = []Code{
	FreshVegetables,
	FreshFruits,
	PreparedMeals,
	Beverages,
	PoweredWheelchair,
	ManualWheelchair,
	CanesWalkers,
	FirstAidKits,
	Toiletries,
	EmotionalSupport,
	SkillSharing,
	RidesTransportation,
	Laptops,
	Smartphones,
	Books,
	SchoolSupplies,
}
