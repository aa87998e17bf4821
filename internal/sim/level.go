package sim

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// WallThickness is the default width of the wall strips around a room.
const WallThickness = 20

// RoomSpec is a rectangular room enclosed by four wall strips.
type RoomSpec struct {
	Name   string `json:"name"`
	Bounds Rect   `json:"bounds"`
}

// ItemSpec places one collectible.
type ItemSpec struct {
	Kind string `json:"kind"`
	Pos  Vec2   `json:"pos"`
	Size Vec2   `json:"size"`
}

// ActorSpec is the spawn point, box size and base speed of an actor.
type ActorSpec struct {
	Spawn Vec2    `json:"spawn"`
	Size  Vec2    `json:"size"`
	Speed float64 `json:"speed"`
}

// Level describes one house. Rooms are expanded into wall strips and every
// door rectangle is carved out of the strips it overlaps; Walls adds free
// standing obstacles on top of that.
type Level struct {
	Name          string     `json:"name"`
	World         Rect       `json:"world"`
	WallThickness float64    `json:"wall_thickness"`
	Rooms         []RoomSpec `json:"rooms"`
	Walls         []Rect     `json:"walls"`
	Doors         []Rect     `json:"doors"`
	HidingSpots   []Rect     `json:"hiding_spots"`
	Items         []ItemSpec `json:"items"`
	Exit          Rect       `json:"exit"`
	Player        ActorSpec  `json:"player"`
	Adversary     ActorSpec  `json:"adversary"`
	PatrolBounds  Rect       `json:"patrol_bounds"`
}

// DefaultHouse is the six-room house the game ships with.
func DefaultHouse() *Level {
	item := func(kind string, x, y float64) ItemSpec {
		return ItemSpec{Kind: kind, Pos: V(x, y), Size: V(20, 20)}
	}
	return &Level{
		Name:          "house",
		World:         R(0, 0, 1200, 800),
		WallThickness: WallThickness,
		Rooms: []RoomSpec{
			{"bedroom", R(50, 50, 300, 250)},
			{"hallway", R(400, 50, 150, 500)},
			{"living room", R(600, 50, 350, 250)},
			{"kitchen", R(600, 350, 350, 250)},
			{"bathroom", R(50, 350, 300, 200)},
			{"storage", R(50, 600, 300, 150)},
		},
		Doors: []Rect{
			R(330, 120, 20, 80), // bedroom east
			R(400, 120, 20, 80), // hallway west, upper
			R(530, 120, 20, 80), // hallway east, upper
			R(600, 120, 20, 80), // living room west
			R(400, 400, 20, 80), // hallway west, lower
			R(530, 400, 20, 80), // hallway east, lower
			R(600, 400, 20, 80), // kitchen west
			R(330, 400, 20, 80), // bathroom east
			R(330, 640, 20, 80), // storage east
		},
		HidingSpots: []Rect{
			R(80, 80, 80, 100),
			R(650, 80, 80, 100),
			R(80, 620, 80, 100),
		},
		Items: []ItemSpec{
			item("key", 150, 150),
			item("hammer", 750, 150),
			item("screwdriver", 750, 450),
			item("battery", 150, 400),
			item("master_key", 150, 650),
		},
		Exit:         R(1000, 0, 200, 100),
		Player:       ActorSpec{Spawn: V(100, 100), Size: V(30, 50), Speed: 300},
		Adversary:    ActorSpec{Spawn: V(800, 500), Size: V(40, 60), Speed: 150},
		PatrolBounds: R(50, 50, 1100, 700),
	}
}

// roomWalls returns the top, bottom, left and right strips of a room.
func roomWalls(r Rect, thick float64) []Rect {
	return []Rect{
		R(r.X, r.Y, r.W, thick),
		R(r.X, r.Bottom()-thick, r.W, thick),
		R(r.X, r.Y, thick, r.H),
		R(r.Right()-thick, r.Y, thick, r.H),
	}
}

// Obstacles expands rooms into wall strips, carves the doors out of them and
// appends the free-standing walls. The result is in a stable order.
func (l *Level) Obstacles() []Rect {
	thick := l.WallThickness
	if thick <= 0 {
		thick = WallThickness
	}
	var walls []Rect
	for _, room := range l.Rooms {
		walls = append(walls, roomWalls(room.Bounds, thick)...)
	}
	for _, door := range l.Doors {
		carved := walls[:0:0]
		for _, w := range walls {
			carved = append(carved, SubtractRect(w, door)...)
		}
		walls = carved
	}
	return append(walls, l.Walls...)
}

// RoomAt returns the name of the room whose bounds contain p, or "".
func (l *Level) RoomAt(p Vec2) string {
	for _, room := range l.Rooms {
		if room.Bounds.ContainsPoint(p) {
			return room.Name
		}
	}
	return ""
}

// Validate rejects levels the simulation cannot run sensibly.
func (l *Level) Validate() error {
	if l.World.Empty() {
		return errors.New("world must have positive width and height")
	}
	for i, room := range l.Rooms {
		if room.Bounds.W < 0 || room.Bounds.H < 0 {
			return errors.Errorf("room %d (%s): negative size", i, room.Name)
		}
	}
	for i, w := range l.Walls {
		if w.W < 0 || w.H < 0 {
			return errors.Errorf("wall %d: negative size", i)
		}
	}
	if len(l.Items) == 0 {
		return errors.New("level needs at least one item")
	}
	for i, it := range l.Items {
		if it.Kind == "" {
			return errors.Errorf("item %d: missing kind", i)
		}
		if it.Size.X <= 0 || it.Size.Y <= 0 {
			return errors.Errorf("item %d (%s): size must be positive", i, it.Kind)
		}
	}
	if l.Exit.Empty() {
		return errors.New("exit region must have positive size")
	}
	if l.PatrolBounds.Empty() {
		return errors.New("patrol bounds must have positive size")
	}
	if err := l.validateActor("player", l.Player); err != nil {
		return err
	}
	return l.validateActor("adversary", l.Adversary)
}

func (l *Level) validateActor(name string, a ActorSpec) error {
	if a.Size.X <= 0 || a.Size.Y <= 0 {
		return errors.Errorf("%s: size must be positive", name)
	}
	if a.Speed <= 0 {
		return errors.Errorf("%s: speed must be positive", name)
	}
	box := Rect{a.Spawn.X, a.Spawn.Y, a.Size.X, a.Size.Y}
	if ClampToWorld(box, l.World) != box {
		return errors.Errorf("%s: spawn (%.0f,%.0f) outside the world", name, a.Spawn.X, a.Spawn.Y)
	}
	for i, o := range l.Obstacles() {
		if RectsOverlap(box, o) {
			return errors.Errorf("%s: spawn (%.0f,%.0f) overlaps obstacle %d", name, a.Spawn.X, a.Spawn.Y, i)
		}
	}
	return nil
}

// ParseLevel decodes and validates a JSON level.
func ParseLevel(data []byte) (*Level, error) {
	var l Level
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, errors.Wrap(err, "decode level")
	}
	if err := l.Validate(); err != nil {
		return nil, errors.Wrapf(err, "level %q", l.Name)
	}
	return &l, nil
}

// LoadLevel reads a JSON level file.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read level %s", path)
	}
	l, err := ParseLevel(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return l, nil
}
