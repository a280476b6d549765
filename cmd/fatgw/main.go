// Command fatgw mounts one or more FAT-style volumes on block devices
// and serves them over FTP and WebDAV, so the contents of a device image
// or RAM volume can be browsed from a desktop machine.
package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/OffBroadway/fatutil/pkg/fatfs"
	"github.com/OffBroadway/fatutil/pkg/fatutil"
)

type gwOptions struct {
	FTPAddr   string `mapstructure:"ftpAddr"`
	DavAddr   string `mapstructure:"davAddr"`
	Image     string `mapstructure:"image"`
	RAMSizeMB int    `mapstructure:"ramSizeMB"`
	Volume    string `mapstructure:"volume"`
	Verbose   bool   `mapstructure:"verbose"`
}

var opts gwOptions

var rootCmd = &cobra.Command{
	Use:   "fatgw",
	Short: "Serve FAT volumes over FTP and WebDAV",
	Long: `fatgw registers block devices (a disk image file, a RAM disk),
mounts volumes on them, and serves a chosen volume over FTP and WebDAV.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	if err := viper.Unmarshal(&opts); err != nil {
		return fmt.Errorf("unmarshalling configuration: %w", err)
	}

	log := logrus.New()
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	vol := fatfs.Volume(strings.ToUpper(opts.Volume))
	if !strings.HasSuffix(string(vol), ":") {
		vol += ":"
	}
	if _, err := vol.Drive(); err != nil {
		return fmt.Errorf("unknown volume %q: %w", opts.Volume, err)
	}

	fsys := fatfs.NewVolumeFS()

	ram := fatfs.NewRAMDisk(uint64(opts.RAMSizeMB) << 20)
	pdrv, _ := fatfs.VolumeSDRAM.Drive()
	fatfs.RegisterBlockDevice(pdrv, ram)
	defer fatfs.UnregisterBlockDevice(pdrv)
	if err := fsys.AddVolume(fatfs.VolumeSDRAM, nil, fatfs.Geometry{}); err != nil {
		return err
	}
	if err := fsys.Mount(fatfs.VolumeSDRAM, true); err != nil {
		return fmt.Errorf("mounting %s: %w", fatfs.VolumeSDRAM, err)
	}
	defer fsys.Unmount(fatfs.VolumeSDRAM)

	if opts.Image != "" {
		img, err := fatfs.NewImageFile(opts.Image)
		if err != nil {
			return fmt.Errorf("opening image %s: %w", opts.Image, err)
		}
		defer img.Close()
		pdrv, _ := fatfs.VolumeUSB.Drive()
		fatfs.RegisterBlockDevice(pdrv, img)
		defer fatfs.UnregisterBlockDevice(pdrv)
		if err := fsys.AddVolume(fatfs.VolumeUSB, nil, fatfs.Geometry{}); err != nil {
			return err
		}
		if err := fsys.Mount(fatfs.VolumeUSB, true); err != nil {
			return fmt.Errorf("mounting %s: %w", fatfs.VolumeUSB, err)
		}
		defer fsys.Unmount(fatfs.VolumeUSB)
	}

	size, err := fatutil.DriveSize(fsys, vol)
	if err != nil {
		return fmt.Errorf("sizing %s: %w", vol, err)
	}
	log.WithFields(logrus.Fields{
		"volume": vol,
		"total":  size.Total,
		"free":   size.Free,
	}).Info("volume mounted")

	store, err := fsys.Store(vol)
	if err != nil {
		return err
	}

	ftpSrv := newFTPServer(opts.FTPAddr, store)

	davLn, err := net.Listen("tcp", opts.DavAddr)
	if err != nil {
		return fmt.Errorf("webdav listen: %w", err)
	}
	defer davLn.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info("shutting down")
		ftpSrv.Stop()
		davLn.Close()
	}()

	errc := make(chan error, 2)
	go func() {
		log.WithField("addr", opts.DavAddr).Info("webdav listening")
		errc <- serveWebdav(davLn, store)
	}()
	go func() {
		log.WithField("addr", opts.FTPAddr).Info("ftp listening")
		errc <- ftpSrv.ListenAndServe()
	}()

	err = <-errc
	ftpSrv.Stop()
	davLn.Close()
	<-errc
	if err != nil && !strings.Contains(err.Error(), "use of closed network connection") {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().String("ftp-addr", "0.0.0.0:7021", "Address for the FTP server")
	rootCmd.PersistentFlags().String("dav-addr", "0.0.0.0:7080", "Address for the WebDAV server")
	rootCmd.PersistentFlags().String("image", "", "Disk image file to expose as the USB: volume")
	rootCmd.PersistentFlags().Int("ram-size-mb", 16, "Capacity of the SDRAM: volume in MiB")
	rootCmd.PersistentFlags().String("volume", "SDRAM:", "Volume to serve (SD:, USB:, SDRAM:)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	viper.SetDefault("ftpAddr", "0.0.0.0:7021")
	viper.SetDefault("davAddr", "0.0.0.0:7080")
	viper.SetDefault("ramSizeMB", 16)
	viper.SetDefault("volume", "SDRAM:")

	viper.SetEnvPrefix("FATGW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	for flag, key := range map[string]string{
		"ftp-addr":    "ftpAddr",
		"dav-addr":    "davAddr",
		"image":       "image",
		"ram-size-mb": "ramSizeMB",
		"volume":      "volume",
		"verbose":     "verbose",
	} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}

	cobra.OnInitialize(func() {
		viper.SetConfigName("fatgw")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(2)
			}
		}
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
