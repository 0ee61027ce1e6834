package volume

import (
	"errors"
	"reflect"
	"testing"

	"vessel/internal/config"
)

func TestResolve_NamedVolume(t *testing.T) {
	cfg := &config.Config{ContainerName: "mydb", VolumeType: "VOLUME"}

	spec, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if spec.Kind != Named {
		t.Errorf("Kind = %v, want Named", spec.Kind)
	}
	if spec.Name != "mydb-data" {
		t.Errorf("Name = %q, want mydb-data", spec.Name)
	}
	if spec.Warning != "" {
		t.Errorf("unexpected warning: %q", spec.Warning)
	}
}

func TestResolve_HostDir(t *testing.T) {
	cfg := &config.Config{ContainerName: "mydb", VolumeType: "HOST_DIR", HostDataPath: "/srv/mydb"}

	spec, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if spec.Kind != HostDir {
		t.Errorf("Kind = %v, want HostDir", spec.Kind)
	}
	if spec.Path != "/srv/mydb" {
		t.Errorf("Path = %q", spec.Path)
	}
}

func TestResolve_HostDirWithoutPath(t *testing.T) {
	cfg := &config.Config{ContainerName: "mydb", VolumeType: "HOST_DIR"}

	_, err := Resolve(cfg)
	if err == nil {
		t.Fatal("expected error for HOST_DIR without HOST_DATA_PATH")
	}

	var missing *config.MissingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingKeyError, got %T: %v", err, err)
	}
	if missing.Key != "HOST_DATA_PATH" {
		t.Errorf("Key = %q", missing.Key)
	}
}

func TestResolve_NoneWarns(t *testing.T) {
	for _, volumeType := range []string{"", "NONE", "tmpfs"} {
		cfg := &config.Config{ContainerName: "mydb", VolumeType: volumeType}

		spec, err := Resolve(cfg)
		if err != nil {
			t.Fatalf("VolumeType=%q: Resolve failed: %v", volumeType, err)
		}
		if spec.Kind != None {
			t.Errorf("VolumeType=%q: Kind = %v, want None", volumeType, spec.Kind)
		}
		if spec.Warning == "" {
			t.Errorf("VolumeType=%q: expected a persistence warning", volumeType)
		}
	}
}

func TestResolve_Pure(t *testing.T) {
	cfg := &config.Config{ContainerName: "mydb", VolumeType: "VOLUME"}

	first, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	second, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Resolve is not pure: %+v != %+v", first, second)
	}
}
