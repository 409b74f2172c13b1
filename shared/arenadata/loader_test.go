package arenadata

import (
	"testing"
	"testing/fstest"
)

const testArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="20" tileheight="20" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="Obstacles">
  <object id="1" name="target" x="90" y="40" width="20" height="20">
   <properties>
    <property name="height" type="int" value="20"/>
   </properties>
  </object>
  <object id="2" name="hill" x="0" y="0" width="50" height="50">
   <properties>
    <property name="elevation" type="int" value="5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" name="spawn" x="150" y="100">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="4" name="spawn" x="100" y="100">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"arenas/test.tmx": {Data: []byte(testArena)}}

	a, err := Load(fsys, "arenas/test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a.Width != 200 || a.Depth != 200 {
		t.Fatalf("size = %vx%v, want 200x200", a.Width, a.Depth)
	}
	if len(a.Obstacles) != 2 {
		t.Fatalf("obstacles = %d, want 2", len(a.Obstacles))
	}

	target := a.Obstacles[0]
	if target.Kind != "target" || target.X != 0 || target.Z != -50 || target.Y != 10 || target.H != 20 {
		t.Errorf("target = %+v", target)
	}

	hill := a.Obstacles[1]
	if hill.H != defaultObstacleHeight || hill.Y != 10 || hill.X != -75 || hill.Z != -75 {
		t.Errorf("hill = %+v", hill)
	}

	if len(a.Spawns) != 2 || a.Spawns[0].Index != 0 || a.Spawns[0].X != 0 || a.Spawns[0].Z != 0 {
		t.Errorf("spawns = %+v", a.Spawns)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "missing.tmx"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
