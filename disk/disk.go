package disk

import (
	"encoding/binary"
	"math"

	"github.com/infinivision/datrie/constant"
	"github.com/infinivision/datrie/errmsg"
	"github.com/infinivision/datrie/sum"
	"golang.org/x/sys/unix"
)

// Write replaces the file at path with the given records.
func Write(path string, recs ...[]byte) error {
	size := len(constant.Magic)
	for _, rec := range recs {
		if uint64(len(rec)) > math.MaxUint32 {
			return errmsg.OutOfSpace
		}
		size += HeaderSize + len(rec)
	}
	fd, err := unix.Open(path, unix.O_CREAT|unix.O_RDWR|unix.O_TRUNC, 0664)
	if err != nil {
		return err
	}
	defer unix.Close(fd)
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		return err
	}
	buf, err := unix.Mmap(fd, 0, size, unix.PROT_WRITE|unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return err
	}
	defer unix.Munmap(buf)
	o := copy(buf, constant.Magic)
	for _, rec := range recs {
		binary.LittleEndian.PutUint32(buf[o:], sum.Checksum(rec))
		binary.LittleEndian.PutUint32(buf[o+SumSize:], uint32(len(rec)))
		o += HeaderSize + copy(buf[o+HeaderSize:], rec)
	}
	if o != size {
		return errmsg.WriteFailed
	}
	return unix.Msync(buf, unix.MS_SYNC)
}

// Read returns copies of the records stored at path.
func Read(path string) ([][]byte, error) {
	var st unix.Stat_t

	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer unix.Close(fd)
	if err := unix.Fstat(fd, &st); err != nil {
		return nil, err
	}
	size := int(st.Size)
	if size < len(constant.Magic) {
		return nil, errmsg.BadMagic
	}
	buf, err := unix.Mmap(fd, 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	defer unix.Munmap(buf)
	if string(buf[:len(constant.Magic)]) != constant.Magic {
		return nil, errmsg.BadMagic
	}
	return records(buf[len(constant.Magic):])
}

func records(buf []byte) ([][]byte, error) {
	var recs [][]byte

	for len(buf) > 0 {
		if len(buf) < HeaderSize {
			return nil, errmsg.Corrupted
		}
		n := uint64(binary.LittleEndian.Uint32(buf[SumSize:]))
		if uint64(len(buf)-HeaderSize) < n {
			return nil, errmsg.Corrupted
		}
		rec := buf[HeaderSize : HeaderSize+n]
		if sum.Checksum(rec) != binary.LittleEndian.Uint32(buf) {
			return nil, errmsg.BadChecksum
		}
		recs = append(recs, append([]byte{}, rec...))
		buf = buf[HeaderSize+n:]
	}
	return recs, nil
}
