package arena

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/showdown/shared/duelconfig"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="Gunslingers">
  <object id="1" name="player2" x="500" y="200" width="60" height="80"/>
  <object id="2" name="player1" x="100" y="200" width="60" height="80"/>
 </objectgroup>
 <objectgroup id="2" name="Controls">
  <object id="3" name="fire_left" x="0" y="300" width="200" height="20"/>
 </objectgroup>
</map>
`

func TestLoadReadsGunslingersAndControls(t *testing.T) {
	fsys := fstest.MapFS{"arena.tmx": {Data: []byte(testTMX)}}

	layout, err := Load(fsys, "arena.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if layout.Width != 640 || layout.Height != 320 {
		t.Fatalf("size = %vx%v, want 640x320", layout.Width, layout.Height)
	}
	p1 := layout.Gunslinger(duelconfig.SidePlayer)
	if p1 != (Rect{X: 100, Y: 200, W: 60, H: 80}) {
		t.Fatalf("player1 = %+v", p1)
	}
	p2 := layout.Gunslinger(duelconfig.SideOpponent)
	if p2.X != 500 {
		t.Fatalf("player2.X = %v, want 500", p2.X)
	}
	if layout.GroundY != 280 {
		t.Fatalf("GroundY = %v, want 280", layout.GroundY)
	}
	if got := layout.Controls[ControlFireLeft]; got.W != 200 {
		t.Fatalf("fire_left = %+v, want the map's zone", got)
	}
	if _, ok := layout.Controls[ControlArcade]; !ok {
		t.Fatalf("missing controls should fall back to built-in zones")
	}
}

func TestLoadRejectsMissingGunslinger(t *testing.T) {
	tmx := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="10" height="10" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="Gunslingers">
  <object id="1" name="player1" x="10" y="10" width="10" height="10"/>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"arena.tmx": {Data: []byte(tmx)}}
	if _, err := Load(fsys, "arena.tmx"); err == nil {
		t.Fatalf("expected error for map without player2")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "nope.tmx"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDefaultLayout(t *testing.T) {
	l := Default()

	p1 := l.Gunslinger(duelconfig.SidePlayer)
	p2 := l.Gunslinger(duelconfig.SideOpponent)
	if p1.Right() >= p2.X {
		t.Fatalf("player1 right edge %v must be left of player2 %v", p1.Right(), p2.X)
	}
	if p1.Bottom() != l.GroundY || p2.Bottom() != l.GroundY {
		t.Fatalf("gunslingers must stand on the ground line")
	}
	if l.Gunslinger(duelconfig.SideNone) != (Rect{}) {
		t.Fatalf("invalid side should return an empty rect")
	}
}

func TestControlAt(t *testing.T) {
	l := Default()
	fl := l.Controls[ControlFireLeft]

	name, ok := l.ControlAt(fl.X+1, fl.Y+1, ControlFireRight, ControlFireLeft)
	if !ok || name != ControlFireLeft {
		t.Fatalf("ControlAt = %q,%v, want fire_left", name, ok)
	}
	if _, ok := l.ControlAt(l.Width/2, 5, ControlFireLeft, ControlFireRight); ok {
		t.Fatalf("point outside all zones should not match")
	}
}
