// Package blocks holds the global block-ID table and the rotation tables
// for block-data nibbles that encode facing (torches, repeaters,
// comparators).
package blocks

import "fmt"

// Names is the fixed ordered table of block identifiers. Index into this
// table is the stable block ID used throughout placement, routing, and
// extraction.
var Names = []string{
	"air",
	"stone",
	"grass",
	"dirt",
	"cobblestone",
	"planks",
	"sapling",
	"bedrock",
	"flowing_water",
	"water",
	"flowing_lava",
	"lava",
	"sand",
	"gravel",
	"gold_ore",
	"iron_ore",
	"coal_ore",
	"log",
	"leaves",
	"sponge",
	"glass",
	"lapis_ore",
	"lapis_block",
	"dispenser",
	"sandstone",
	"noteblock",
	"bed",
	"golden_rail",
	"detector_rail",
	"sticky_piston",
	"web",
	"tallgrass",
	"deadbush",
	"piston",
	"piston_head",
	"wool",
	"piston_extension",
	"yellow_flower",
	"red_flower",
	"brown_mushroom",
	"red_mushroom",
	"gold_block",
	"iron_block",
	"double_stone_slab",
	"stone_slab",
	"brick_block",
	"tnt",
	"bookshelf",
	"mossy_cobblestone",
	"obsidian",
	"torch",
	"fire",
	"mob_spawner",
	"oak_stairs",
	"chest",
	"redstone_wire",
	"diamond_ore",
	"diamond_block",
	"crafting_table",
	"wheat",
	"farmland",
	"furnace",
	"lit_furnace",
	"standing_sign",
	"wooden_door",
	"ladder",
	"rail",
	"stone_stairs",
	"wall_sign",
	"lever",
	"stone_pressure_plate",
	"iron_door",
	"wooden_pressure_plate",
	"redstone_ore",
	"lit_redstone_ore",
	"unlit_redstone_torch",
	"redstone_torch",
	"stone_button",
	"snow_layer",
	"ice",
	"snow",
	"cactus",
	"clay",
	"reeds",
	"jukebox",
	"fence",
	"pumpkin",
	"netherrack",
	"soul_sand",
	"glowstone",
	"portal",
	"lit_pumpkin",
	"cake",
	"unpowered_repeater",
	"powered_repeater",
	"stained_glass",
	"trapdoor",
	"monster_egg",
	"stonebrick",
	"brown_mushroom_block",
	"red_mushroom_block",
	"iron_bars",
	"glass_pane",
	"melon_block",
	"pumpkin_stem",
	"melon_stem",
	"vine",
	"fence_gate",
	"brick_stairs",
	"stone_brick_stairs",
	"mycelium",
	"waterlily",
	"nether_brick",
	"nether_brick_fence",
	"nether_brick_stairs",
	"nether_wart",
	"enchanting_table",
	"brewing_stand",
	"cauldron",
	"end_portal",
	"end_portal_frame",
	"end_stone",
	"dragon_egg",
	"redstone_lamp",
	"lit_redstone_lamp",
	"double_wooden_slab",
	"wooden_slab",
	"cocoa",
	"sandstone_stairs",
	"emerald_ore",
	"ender_chest",
	"tripwire_hook",
	"tripwire",
	"emerald_block",
	"spruce_stairs",
	"birch_stairs",
	"jungle_stairs",
	"command_block",
	"beacon",
	"cobblestone_wall",
	"flower_pot",
	"carrots",
	"potatoes",
	"wooden_button",
	"skull",
	"anvil",
	"trapped_chest",
	"light_weighted_pressure_plate",
	"heavy_weighted_pressure_plate",
	"unpowered_comparator",
	"powered_comparator",
	"daylight_detector",
	"redstone_block",
	"quartz_ore",
	"hopper",
	"quartz_block",
	"quartz_stairs",
	"activator_rail",
	"dropper",
	"stained_hardened_clay",
	"stained_glass_pane",
	"leaves2",
	"log2",
	"acacia_stairs",
	"dark_oak_stairs",
	"slime",
	"barrier",
	"iron_trapdoor",
	"prismarine",
	"sea_lantern",
	"hay_block",
	"carpet",
	"hardened_clay",
	"coal_block",
	"packed_ice",
	"double_plant",
	"standing_banner",
	"wall_banner",
	"daylight_detector_inverted",
	"red_sandstone",
	"red_sandstone_stairs",
	"double_stone_slab2",
	"stone_slab2",
	"spruce_fence_gate",
	"birch_fence_gate",
	"jungle_fence_gate",
	"dark_oak_fence_gate",
	"acacia_fence_gate",
	"spruce_fence",
	"birch_fence",
	"jungle_fence",
	"dark_oak_fence",
	"acacia_fence",
	"spruce_door",
	"birch_door",
	"jungle_door",
	"acacia_door",
	"dark_oak_door",
	"end_rod",
	"chorus_plant",
	"chorus_flower",
	"purpur_block",
	"purpur_pillar",
	"purpur_stairs",
	"purpur_double_slab",
	"purpur_slab",
	"end_bricks",
	"beetroots",
	"grass_path",
	"end_gateway",
	"repeating_command_block",
	"chain_command_block",
	"frosted_ice",
}

var byName map[string]int

func init() {
	byName = make(map[string]int, len(Names))
	for i, n := range Names {
		byName[n] = i
	}
}

// ID returns the stable identifier for a block name. It panics if the name
// is not in the table, since the table is a compile-time constant and
// callers only ever look up names they control.
func ID(name string) int {
	id, ok := byName[name]
	if !ok {
		panic(fmt.Sprintf("blocks: unknown block name %q", name))
	}
	return id
}

// Name returns the block name for a stable identifier, or "" if out of range.
func Name(id int) string {
	if id < 0 || id >= len(Names) {
		return ""
	}
	return Names[id]
}

// Torch facing data values, and their rotation table.
const (
	TorchEast = 1
	TorchWest = 2
	TorchSouth = 3
	TorchNorth = 4
	TorchUp = 5
)

var torchRotations = []int{TorchNorth, TorchWest, TorchSouth, TorchEast}

// RotateTorch rotates a torch/redstone-torch data nibble by turns*90 degrees
// counter-clockwise about Y. A torch stood straight up (TorchUp) has no
// facing and is unaffected.
func RotateTorch(data, turns int) int {
	if data == TorchUp {
		return TorchUp
	}
	idx := indexOf(torchRotations, data)
	if idx < 0 {
		panic(fmt.Sprintf("blocks: invalid torch data %d", data))
	}
	return torchRotations[mod4(idx+turns)]
}

// Repeater/comparator facing bits (low 2 bits of the data nibble) and their
// rotation table. The high bits (delay ticks for repeaters, mode bit for
// comparators) are preserved untouched.
const (
	FacingNorth = 0
	FacingEast  = 1
	FacingSouth = 2
	FacingWest  = 3
)

var facingRotations = []int{FacingNorth, FacingWest, FacingSouth, FacingEast}

// RotateRepeater rotates an (unpowered or powered) repeater's data nibble.
func RotateRepeater(data, turns int) int {
	return rotateFacingNibble(data, turns)
}

// RotateComparator rotates an (unpowered or powered) comparator's data
// nibble.
func RotateComparator(data, turns int) int {
	return rotateFacingNibble(data, turns)
}

func rotateFacingNibble(data, turns int) int {
	rotBits := data & 0x3
	otherBits := data & 0xc
	idx := indexOf(facingRotations, rotBits)
	if idx < 0 {
		panic(fmt.Sprintf("blocks: invalid facing bits %d", rotBits))
	}
	newRotBits := facingRotations[mod4(idx+turns)] & 0x3
	return otherBits | newRotBits
}

// RotateData rewrites a block's data nibble for the given block ID, routing
// to the block-specific rotation table when the block's data encodes a
// facing. Blocks without facing-encoded data pass through unchanged.
func RotateData(blockID, data, turns int) int {
	switch Name(blockID) {
	case "torch", "redstone_torch", "unlit_redstone_torch":
		return RotateTorch(data, turns)
	case "unpowered_repeater", "powered_repeater":
		return RotateRepeater(data, turns)
	case "unpowered_comparator", "powered_comparator":
		return RotateComparator(data, turns)
	default:
		return data
	}
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func mod4(n int) int {
	return ((n % 4) + 4) % 4
}
