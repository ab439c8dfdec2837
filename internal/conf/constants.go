package conf

// DefaultCapacity - Number of slots or buckets of a hash table when no capacity is given
const DefaultCapacity int = 101

// RootLevel - Level of a leaf in an AA tree, also the level every new node gets
const RootLevel int = 1

// LeafHeight - Height of a leaf in an AVL tree
const LeafHeight int = 1
