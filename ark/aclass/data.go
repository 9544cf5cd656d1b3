package aclass

type (
	// Role is the semantic role inferred for a game object.
	Role string
	Rule struct {
		Name          string         `yaml:"name"`
		Role          Role           `yaml:"role"`
		ClassContains []string       `yaml:"class_contains"`
		ClassPrefixes []string       `yaml:"class_prefixes"`
		FlagProperty  string         `yaml:"flag_property"`
		FlagRole      Role           `yaml:"flag_role"`
		PropertyRoles []PropertyRole `yaml:"property_roles"`
	}
	// PropertyRole assigns Role to objects whose first matching property is Property.
	PropertyRole struct {
		Property string `yaml:"property"`
		Role     Role   `yaml:"role"`
	}
	RuleSet struct {
		Rules []Rule `yaml:"rules"`
	}
)

const (
	RoleInventoryOwner        = Role("InventoryOwner")
	RoleInventory             = Role("Inventory")
	RoleItemStack             = Role("ItemStack")
	RoleEngram                = Role("Engram")
	RoleTameDinosaur          = Role("TameDinosaur")
	RoleDinosaurStatus        = Role("DinosaurStatus")
	RolePlayerStatusComponent = Role("PlayerStatusComponent")
	RoleWildDinosaur          = Role("WildDinosaur")
	RoleObeliskRelated        = Role("Obelisk_Related")
	RoleMiscellaneous         = Role("miscellaneous")
)

var Roles = []Role{
	RoleInventoryOwner,
	RoleInventory,
	RoleItemStack,
	RoleEngram,
	RoleTameDinosaur,
	RoleDinosaurStatus,
	RolePlayerStatusComponent,
	RoleWildDinosaur,
	RoleObeliskRelated,
	RoleMiscellaneous,
}
