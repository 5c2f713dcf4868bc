package room

import "time"

// Resource identifies a tradeable resource kind.
type Resource string

const (
	ResourceWood  Resource = "wood"
	ResourceBrick Resource = "brick"
	ResourceSheep Resource = "sheep"
	ResourceWheat Resource = "wheat"
	ResourceOre   Resource = "ore"
)

// Resources lists every resource kind in canonical order.
var Resources = []Resource{ResourceWood, ResourceBrick, ResourceSheep, ResourceWheat, ResourceOre}

// Terrain identifies a hex terrain kind.
type Terrain string

const (
	TerrainWood   Terrain = "wood"
	TerrainBrick  Terrain = "brick"
	TerrainSheep  Terrain = "sheep"
	TerrainWheat  Terrain = "wheat"
	TerrainOre    Terrain = "ore"
	TerrainDesert Terrain = "desert"
)

// CardKind identifies a development card kind.
type CardKind string

const (
	CardKnight       CardKind = "knight"
	CardRoadBuilding CardKind = "roadBuilding"
	CardYearOfPlenty CardKind = "yearOfPlenty"
	CardMonopoly     CardKind = "monopoly"
	CardVictoryPoint CardKind = "victoryPoint"
)

// PortKind identifies a harbor trade ratio.
type PortKind string

const (
	PortGeneric PortKind = "generic"
	PortWood    PortKind = "wood"
	PortBrick   PortKind = "brick"
	PortSheep   PortKind = "sheep"
	PortWheat   PortKind = "wheat"
	PortOre     PortKind = "ore"
)

// bankResourceStock is the per-resource stock of a fresh bank.
const bankResourceStock = 19

// DevDeckSize is the total number of development cards.
const DevDeckSize = 25

// Piece is a built road, settlement, or city.
type Piece struct {
	Location string `json:"location"`
	Owner    string `json:"owner"`
}

// Board holds every built piece plus the longest-road cache.
type Board struct {
	Roads       []Piece        `json:"roads"`
	Settlements []Piece        `json:"settlements"`
	Cities      []Piece        `json:"cities"`
	// LongestRoad caches road length per seated player id. The cache is
	// advisory: it is zeroed on seat removal and re-derived by the rule
	// engine, never trusted as authoritative here.
	LongestRoad map[string]int `json:"longestRoad"`
}

// Tile is one hex with its terrain and number chit (0 on the desert).
type Tile struct {
	Hex     string  `json:"hex"`
	Terrain Terrain `json:"terrain"`
	Chit    int     `json:"chit,omitempty"`
}

// Port is one harbor assignment.
type Port struct {
	Edge string   `json:"edge"`
	Kind PortKind `json:"kind"`
}

// Config holds the generated layout and the seeds that produced it.
type Config struct {
	Tiles          []Tile     `json:"tiles"`
	Ports          []Port     `json:"ports"`
	MapSeed        string     `json:"mapSeed"`
	DeckSeed       string     `json:"deckSeed"`
	DevDeck        []CardKind `json:"devDeck"`
	PlacementOrder []string   `json:"placementOrder,omitempty"`
}

// Bank is the shared resource and development card supply.
type Bank struct {
	Resources         map[Resource]int `json:"resources"`
	DevCardsRemaining int              `json:"devCardsRemaining"`
}

// TradePhase describes the trade sub-state machine.
type TradePhase string

const (
	// TradePhaseIdle indicates no offer is outstanding.
	TradePhaseIdle TradePhase = "idle"
	// TradePhaseOffered indicates an open offer awaits responses.
	TradePhaseOffered TradePhase = "offered"
)

// TradeOffer is one outstanding resource exchange proposal.
type TradeOffer struct {
	FromPlayerID string           `json:"fromPlayerId"`
	Give         map[Resource]int `json:"give"`
	Want         map[Resource]int `json:"want"`
}

// Trade is the per-room trading document.
type Trade struct {
	Phase     TradePhase  `json:"phase"`
	Offer     *TradeOffer `json:"offer,omitempty"`
	VisibleTo []string    `json:"visibleTo,omitempty"`
	Deadline  *time.Time  `json:"deadline,omitempty"`
}

// Hand is one player's private holdings.
type Hand struct {
	Resources   map[Resource]int `json:"resources"`
	DevCards    map[CardKind]int `json:"devCards"`
	NewDevCards map[CardKind]int `json:"newDevCards"`
	ArmySize    int              `json:"armySize"`
}

// NewBoard returns an empty board with a zeroed longest-road cache for the
// given player ids.
func NewBoard(playerIDs []string) Board {
	cache := make(map[string]int, len(playerIDs))
	for _, id := range playerIDs {
		cache[id] = 0
	}
	return Board{
		Roads:       []Piece{},
		Settlements: []Piece{},
		Cities:      []Piece{},
		LongestRoad: cache,
	}
}

// NewBank returns a full bank.
func NewBank() Bank {
	stock := make(map[Resource]int, len(Resources))
	for _, r := range Resources {
		stock[r] = bankResourceStock
	}
	return Bank{
		Resources:         stock,
		DevCardsRemaining: DevDeckSize,
	}
}

// NewTrade returns an idle trade document.
func NewTrade() Trade {
	return Trade{Phase: TradePhaseIdle}
}

// NewHand returns an empty hand.
func NewHand() Hand {
	res := make(map[Resource]int, len(Resources))
	for _, r := range Resources {
		res[r] = 0
	}
	return Hand{
		Resources:   res,
		DevCards:    map[CardKind]int{},
		NewDevCards: map[CardKind]int{},
	}
}

// StripPieces removes every piece owned by playerID from the board.
func (b Board) StripPieces(playerID string) Board {
	b.Roads = withoutOwner(b.Roads, playerID)
	b.Settlements = withoutOwner(b.Settlements, playerID)
	b.Cities = withoutOwner(b.Cities, playerID)
	return b
}

func withoutOwner(pieces []Piece, owner string) []Piece {
	kept := make([]Piece, 0, len(pieces))
	for _, p := range pieces {
		if p.Owner != owner {
			kept = append(kept, p)
		}
	}
	return kept
}

// ZeroLongestRoad replaces the longest-road cache with zero entries for
// exactly the given player ids.
func (b Board) ZeroLongestRoad(playerIDs []string) Board {
	cache := make(map[string]int, len(playerIDs))
	for _, id := range playerIDs {
		cache[id] = 0
	}
	b.LongestRoad = cache
	return b
}
